package workers

import (
	"context"
	"time"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
)

// sessionSweeper periodically deletes expired session rows. It is purely a
// housekeeping job: session resolution checks expiry itself, so correctness
// never depends on the sweeper having run.
type sessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper constructs a [Worker] sweeping expired sessions every
// interval.
func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) Worker {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It sweeps on every tick until ctx is cancelled.
func (s *sessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	purged, err := s.sessions.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Msg("session sweep ended with error")
		return
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired sessions swept")
	}
}
