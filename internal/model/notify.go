package model

import "context"

// Notifier delivers a message to a user's address.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
