// Package database provides PostgreSQL connection management with lifecycle coordination.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/floorplan/pkg/lifecycle"
)

// ErrNotReady is returned by Check before the startup ping succeeds.
var ErrNotReady = errors.New("database not ready")

// System owns the PostgreSQL pool behind the reference data.
type System interface {
	Connection() *sql.DB
	// Start registers a startup hook that waits for the server to accept
	// connections and a shutdown hook that closes the pool.
	Start(lc *lifecycle.Coordinator) error
	// Check returns ErrNotReady before startup completes or after shutdown,
	// and otherwise pings the server.
	Check(ctx context.Context) error
}

const (
	firstBackoff = 250 * time.Millisecond
	maxBackoff   = 2 * time.Second
)

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
	ready       atomic.Bool
}

// New opens the pool and applies the pool limits. No connection is made
// until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
		defer cancel()

		attempts, err := d.await(ctx)
		if err != nil {
			d.logger.Error("database unreachable", "attempts", attempts, "error", err)
			return
		}

		d.ready.Store(true)
		d.logger.Info("database connection established", "attempts", attempts)
	})

	lc.OnShutdown(func() {
		d.ready.Store(false)
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

// await pings with exponential backoff until the server answers or ctx ends.
func (d *database) await(ctx context.Context) (int, error) {
	backoff := firstBackoff
	for attempt := 1; ; attempt++ {
		err := d.conn.PingContext(ctx)
		if err == nil {
			return attempt, nil
		}
		d.logger.Debug("database ping failed", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return attempt, err
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (d *database) Check(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}
