package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizkit/quiznote/internal/session"
)

// ReapInterval is how often the reaper scans for expired sessions.
const ReapInterval = 1 * time.Minute

// SessionReaper removes quiz sessions older than the configured TTL.
// Without it sessions accumulate for the lifetime of the process, which is
// the default behavior; enabling the reaper is a deliberate opt-in.
type SessionReaper struct {
	registry *session.Registry
	ttl      time.Duration
	log      zerolog.Logger
}

// NewSessionReaper creates a reaper with the given TTL.
func NewSessionReaper(registry *session.Registry, ttl time.Duration, log zerolog.Logger) *SessionReaper {
	return &SessionReaper{
		registry: registry,
		ttl:      ttl,
		log:      log.With().Str("component", "session_reaper").Logger(),
	}
}

// Start runs the reap loop until ctx is cancelled.
func (w *SessionReaper) Start(ctx context.Context) {
	w.log.Info().Dur("ttl", w.ttl).Msg("SessionReaper started")

	ticker := time.NewTicker(ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("SessionReaper stopped")
			return
		case <-ticker.C:
			if n := w.registry.ReapOlderThan(time.Now().Add(-w.ttl)); n > 0 {
				w.log.Info().Int("reaped", n).Msg("expired sessions removed")
			}
		}
	}
}
