package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateCredential(ctx context.Context, id uuid.UUID, credential string) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user account.
type User struct {
	ID                uuid.UUID
	Email             string
	Username          string
	Credential        string
	BlockchainID      string
	ReferenceLocation string
	DataSharable      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserUpdate carries a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Email             *string
	Username          *string
	BlockchainID      *string
	ReferenceLocation *string
	DataSharable      *bool
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Username == nil && u.BlockchainID == nil &&
		u.ReferenceLocation == nil && u.DataSharable == nil
}
