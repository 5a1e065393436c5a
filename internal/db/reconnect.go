package db

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/config"
)

// maxReconnectDelay caps the backoff between connection attempts.
const maxReconnectDelay = 60 * time.Second

// connectFunc is swapped in tests.
var connectFunc = Connect

// ConnectWithRetry connects with exponential backoff.
// This provides resilience against a database that is still starting up.
//
// Parameters:
//   - cfg: Database configuration
//   - maxRetries: Maximum number of connection attempts (0 = until ctx is done)
//   - initialDelay: Initial wait time between attempts
//
// Returns: Connected database or the last error once attempts are exhausted
func ConnectWithRetry(ctx context.Context, cfg config.DatabaseConfig, maxRetries int, initialDelay time.Duration, logger *zap.SugaredLogger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	delay := initialDelay
	for attempt := 1; ; attempt++ {
		db, err := connectFunc(ctx, cfg)
		if err == nil {
			if attempt > 1 {
				logger.Infow("Database connected", "attempt", attempt)
			}
			return db, nil
		}

		if maxRetries > 0 && attempt >= maxRetries {
			return nil, errors.Wrapf(err, "database unavailable after %d attempts", attempt)
		}

		logger.Warnw("Database connection failed",
			"attempt", attempt,
			"retry_in", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "database connect cancelled")
		case <-time.After(delay):
		}

		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

// HealthCheck pings the database and runs a trivial query.
func HealthCheck(ctx context.Context, db *DB) error {
	if db == nil {
		return errors.New("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "ping")
	}

	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return errors.Wrap(err, "query")
	}
	if result != 1 {
		return errors.Newf("unexpected result: %d", result)
	}
	return nil
}
