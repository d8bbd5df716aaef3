package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/event"
)

// NewMongoMonitor returns a command monitor that logs every mongo command
// at debug level and anything slower than slowThreshold at warn level.
//
// It is the document-store counterpart of the pgx tracelog wiring and is
// only attached in the local environment because it is very noisy.
func NewMongoMonitor(logger zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	log := logger.With().Str("database", "mongo").Logger()

	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			log.Debug().
				Str("command", e.CommandName).
				Str("db", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			ev := log.Debug()
			if slowThreshold > 0 && e.Duration >= slowThreshold {
				ev = log.Warn().Bool("slow", true)
			}
			ev.
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			log.Error().
				Err(e.Failure).
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command failed")
		},
	}
}
