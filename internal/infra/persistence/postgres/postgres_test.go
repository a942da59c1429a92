package postgres

import (
	"context"
	"log/slog"
	"testing"

	"pantry/config"
	"pantry/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutPostgresConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	db, err := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.Default(),
	})
	require.NoError(t, err)
	assert.Nil(t, db)

	// The app must still be able to start without a database.
	lc.RequireStart().RequireStop()
}

func TestConnectivityProbe_NilDatabase(t *testing.T) {
	probe := NewConnectivityProbe(nil)

	err := probe.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrProbeNotConfigured))
}
