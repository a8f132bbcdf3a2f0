package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MedicalInfoStore defines persistence operations for per-user medical info.
type MedicalInfoStore interface {
	Upsert(ctx context.Context, info MedicalInfo) (MedicalInfo, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (MedicalInfo, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (MedicalInfo, error)
}

// MedicalInfo holds free-text medical details a user chose to store.
type MedicalInfo struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	MedicalCondition  string
	MedicalBackground string
	ShareData         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MedicalInfoParams contains the user-editable medical info fields.
type MedicalInfoParams struct {
	MedicalCondition  string
	MedicalBackground string
	ShareData         bool
}
