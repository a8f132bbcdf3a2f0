package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultShareDuration is used when a share link is created without an explicit lifetime.
const DefaultShareDuration = 24 * time.Hour

// MaxShareHours is the longest lifetime a share link may be created with.
const MaxShareHours = 24 * 365

// ShareStore defines persistence operations for public share links.
type ShareStore interface {
	Create(ctx context.Context, share Share) (Share, error)
	GetActive(ctx context.Context, shareID uuid.UUID, now time.Time) (SharedFile, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]SharedFile, error)
	Delete(ctx context.Context, shareID, ownerID uuid.UUID) (Share, error)
}

// Share is an expiring public link to a file.
type Share struct {
	ID        uuid.UUID
	FileID    uuid.UUID
	OwnerID   uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SharedFile joins a share link with the metadata of the shared file.
type SharedFile struct {
	Share
	FileName string
	FileType string
	URL      string
	FileUUID string
	IPFSHash string
}
