package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Claims, error)
}

// Identity is the set of user attributes embedded in a session token.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// Claims is a verified session token payload.
type Claims struct {
	Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionResult is returned by flows that end with a signed-in user.
type SessionResult struct {
	UserID uuid.UUID
	Token  string
}
