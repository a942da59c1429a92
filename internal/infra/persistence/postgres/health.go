// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pantry/internal/domain/service"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dbProbe implements the service.ConnectivityProbe interface with a database ping.
type dbProbe struct {
	db *gorm.DB
}

// NewConnectivityProbe is the constructor for dbProbe. A nil database handle
// is allowed: it makes Ping report a configuration error instead of panicking,
// so a misconfigured deployment degrades to a connectivity error state.
func NewConnectivityProbe(db *gorm.DB) service.ConnectivityProbe {
	return &dbProbe{db: db}
}

// Ping performs a lightweight round-trip against the database.
func (p *dbProbe) Ping(ctx context.Context) error {
	if p.db == nil {
		return errors.Wrap(service.ErrProbeNotConfigured, "database connection is not configured")
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get underlying sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "database ping failed")
	}

	return nil
}
