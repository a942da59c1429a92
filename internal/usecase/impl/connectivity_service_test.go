package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// connectivityFixtures holds all test dependencies for connectivity service tests.
type connectivityFixtures struct {
	service *connectivityService
	probe   *mockConnectivityProbe
	bus     *fakeEventBus
}

func createTestConnectivityService(t *testing.T) connectivityFixtures {
	t.Helper()

	probe := &mockConnectivityProbe{}
	bus := &fakeEventBus{}

	svc := NewConnectivityService(ConnectivityServiceParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Probe:     probe,
		EventBus:  bus,
		Logger:    newDiscardLogger(),
	}).(*connectivityService)

	t.Cleanup(func() { _ = svc.Close() })

	return connectivityFixtures{
		service: svc,
		probe:   probe,
		bus:     bus,
	}
}

func TestConnectivityService_StartsUninitialized(t *testing.T) {
	fx := createTestConnectivityService(t)

	state := fx.service.State()

	assert.Equal(t, entity.ConnectivityUninitialized, state.Phase)
	assert.False(t, state.Connected)
}

func TestConnectivityService_Check_Connected(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	fx.probe.On("Ping", mock.Anything).Return(nil)

	state := fx.service.Check(ctx)

	assert.Equal(t, entity.ConnectivityReady, state.Phase)
	assert.True(t, state.Connected)
	assert.Empty(t, state.Err)
	assert.Equal(t, state, fx.service.State())
}

func TestConnectivityService_Check_Unreachable(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	fx.probe.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	state := fx.service.Check(ctx)

	// An ordinary failed round-trip is not terminal: the machine settles in
	// ready with the connection flag cleared so Reconnect can retry.
	assert.Equal(t, entity.ConnectivityReady, state.Phase)
	assert.False(t, state.Connected)
	assert.Contains(t, state.Err, "connection refused")
}

func TestConnectivityService_Check_NotConfigured(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	fx.probe.On("Ping", mock.Anything).
		Return(errors.Wrap(service.ErrProbeNotConfigured, "database connection is not configured"))

	state := fx.service.Check(ctx)

	// A missing configuration is an error state, not a crash.
	assert.Equal(t, entity.ConnectivityError, state.Phase)
	assert.False(t, state.Connected)
	assert.Contains(t, state.Err, "not configured")
}

func TestConnectivityService_NilProbe(t *testing.T) {
	bus := &fakeEventBus{}
	svc := NewConnectivityService(ConnectivityServiceParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Probe:     nil,
		EventBus:  bus,
		Logger:    newDiscardLogger(),
	})
	t.Cleanup(func() { _ = svc.Close() })

	state := svc.Check(context.Background())

	assert.Equal(t, entity.ConnectivityError, state.Phase)
	assert.NotEmpty(t, state.Err)
}

func TestConnectivityService_Reconnect_AfterFailure(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	fx.probe.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	fx.probe.On("Ping", mock.Anything).Return(nil)

	first := fx.service.Check(ctx)
	require.False(t, first.Connected)

	second := fx.service.Reconnect(ctx)

	assert.Equal(t, entity.ConnectivityReady, second.Phase)
	assert.True(t, second.Connected)
	assert.Empty(t, second.Err)
}

func TestConnectivityService_SignedInTriggersCheck(t *testing.T) {
	fx := createTestConnectivityService(t)

	fx.probe.On("Ping", mock.Anything).Return(nil)

	userID := uuid.New()
	fx.bus.Publish(context.Background(), &service.SessionEventPayload{
		Event:  entity.SessionEventSignedIn,
		UserID: &userID,
	})

	// The probe runs off the dispatch path, so poll for the settled state.
	require.Eventually(t, func() bool {
		state := fx.service.State()

		return state.Phase == entity.ConnectivityReady && state.Connected
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectivityService_SignedOutSettlesDisconnected(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	fx.probe.On("Ping", mock.Anything).Return(nil)
	state := fx.service.Check(ctx)
	require.True(t, state.Connected)

	fx.bus.Publish(ctx, &service.SessionEventPayload{Event: entity.SessionEventSignedOut})

	settled := fx.service.State()
	assert.Equal(t, entity.ConnectivityReady, settled.Phase)
	assert.False(t, settled.Connected)
	assert.Empty(t, settled.Err)
}

func TestConnectivityService_SignedOutDuringCheckWinsOverResult(t *testing.T) {
	fx := createTestConnectivityService(t)
	ctx := context.Background()

	// The sign-out lands while the check is mid-probe. The check resolves
	// afterwards with a successful round-trip, but the signed-out settle
	// must not be overwritten by it.
	fx.probe.On("Ping", mock.Anything).
		Run(func(mock.Arguments) {
			fx.bus.Publish(ctx, &service.SessionEventPayload{Event: entity.SessionEventSignedOut})
		}).
		Return(nil).
		Once()
	fx.probe.On("Ping", mock.Anything).Return(nil)

	state := fx.service.Check(ctx)

	assert.Equal(t, entity.ConnectivityReady, state.Phase)
	assert.False(t, state.Connected)
	assert.Empty(t, state.Err)

	settled := fx.service.State()
	assert.Equal(t, entity.ConnectivityReady, settled.Phase)
	assert.False(t, settled.Connected)

	// A later explicit check starts fresh and reflects the probe again.
	next := fx.service.Check(ctx)
	assert.True(t, next.Connected)
}
