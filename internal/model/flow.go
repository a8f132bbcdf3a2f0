package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FlowTTL is the default lifetime of a pending signup or password reset.
const FlowTTL = 600 * time.Second

// FlowStore holds short-lived, single-use flow state.
// Get and Consume return ErrNotFound for missing or expired records.
type FlowStore interface {
	Put(ctx context.Context, record FlowRecord, ttl time.Duration) error
	Get(ctx context.Context, id string) (FlowRecord, error)
	Consume(ctx context.Context, id string) (FlowRecord, error)
	Delete(ctx context.Context, id string) error
}

// FlowKind enumerates flow types.
type FlowKind string

const (
	// FlowKindSignUp is a pending registration awaiting OTP verification.
	FlowKindSignUp FlowKind = "signup"
	// FlowKindPasswordReset is a pending password reset awaiting a new password.
	FlowKindPasswordReset FlowKind = "password_reset"
)

// FlowRecord describes one in-progress signup or password reset.
type FlowRecord struct {
	ID         string    `json:"id"`
	Kind       FlowKind  `json:"kind"`
	OTPSecret  string    `json:"otp_secret,omitempty"`
	Email      string    `json:"email"`
	Username   string    `json:"username,omitempty"`
	Credential string    `json:"credential,omitempty"`
	UserID     uuid.UUID `json:"user_id,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}
