// Package notify delivers user-facing messages such as OTP and reset links.
package notify

import (
	"context"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

var _ model.Notifier = (*Log)(nil)

// Log writes messages to the application log instead of sending them.
// Used for local development.
type Log struct {
	logger *logger.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger *logger.Logger) *Log {
	return &Log{logger: logger}
}

// Send logs the message and always succeeds.
func (n *Log) Send(_ context.Context, to, subject, body string) error {
	n.logger.Info("Notifier: message",
		"to", to,
		"subject", subject,
		"body", body)
	return nil
}
