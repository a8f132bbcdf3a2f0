// Package cleanup removes rows that are no longer reachable.
package cleanup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/metrics"
)

const deleteExpiredShares = `DELETE FROM file_shares WHERE expires_at <= $1`

// Executor runs a statement that returns no rows. *sql.DB satisfies it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Shares deletes expired share links.
type Shares struct {
	db       Executor
	recorder metrics.Recorder
	now      func() time.Time
	logger   *logger.Logger
}

// NewShares creates the expired-share cleanup job. A nil now defaults to time.Now.
func NewShares(db Executor, recorder metrics.Recorder, now func() time.Time, logger *logger.Logger) *Shares {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if now == nil {
		now = time.Now
	}
	return &Shares{db: db, recorder: recorder, now: now, logger: logger}
}

// RunOnce deletes every share whose expiry has passed and returns the count.
func (s *Shares) RunOnce(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteExpiredShares, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired shares: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted shares: %w", err)
	}
	s.recorder.RecordSharesPurged(n)
	return n, nil
}

// Start runs RunOnce immediately and then every interval until ctx is done.
func (s *Shares) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Cleanup worker: started",
		"interval", interval)

	s.run(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cleanup worker: stopped")
			return
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Shares) run(ctx context.Context) {
	n, err := s.RunOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("Cleanup worker: run failed",
			"error", err.Error())
		return
	}
	if n > 0 {
		s.logger.Info("Cleanup worker: expired shares deleted",
			"count", n)
	}
}
