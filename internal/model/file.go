package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultFileType is used when the client does not report a MIME type.
const DefaultFileType = "application/octet-stream"

// FileStore defines persistence operations for file metadata.
type FileStore interface {
	Create(ctx context.Context, file File) (File, error)
	GetByID(ctx context.Context, id uuid.UUID) (File, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]File, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, update FileUpdate) (File, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (File, error)
}

// File is metadata for a file stored outside of this service.
type File struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	URL            string
	FileUUID       string
	IPFSHash       string
	FileName       string
	FileType       string
	FileSize       int64
	ExpirationTime int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateFileParams contains parameters to register a file.
type CreateFileParams struct {
	URL            string
	FileUUID       string
	IPFSHash       string
	FileName       string
	FileType       string
	FileSize       int64
	ExpirationTime int64
}

// FileUpdate carries a partial file update. Nil fields are left untouched.
type FileUpdate struct {
	FileName       *string
	FileType       *string
	ExpirationTime *int64
}

// IsEmpty reports whether the update changes nothing.
func (u FileUpdate) IsEmpty() bool {
	return u.FileName == nil && u.FileType == nil && u.ExpirationTime == nil
}
