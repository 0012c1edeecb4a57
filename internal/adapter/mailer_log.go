package adapter

import (
	"context"

	"github.com/heavymart/backend/internal/logger"
)

// logMailer is the deterministic no-provider mailer: every Send succeeds and
// is recorded in the application log. Selected when no provider URL is
// configured, which keeps local development and the dispatch log working
// without an external service.
type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer constructs the log-only [Mailer].
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

// Send implements [Mailer]. It logs the message and always succeeds.
func (m *logMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail dispatch (log-only mailer)")

	return nil
}
