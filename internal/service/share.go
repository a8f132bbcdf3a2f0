package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// Share manages expiring public links to files.
type Share struct {
	shareStore      model.ShareStore
	fileStore       model.FileStore
	defaultDuration time.Duration
	now             func() time.Time
	logger          *logger.Logger
}

// NewShare creates a Share service. A non-positive defaultDuration falls back
// to model.DefaultShareDuration and a nil now to time.Now.
func NewShare(
	shareStore model.ShareStore,
	fileStore model.FileStore,
	defaultDuration time.Duration,
	now func() time.Time,
	logger *logger.Logger,
) *Share {
	if defaultDuration <= 0 {
		defaultDuration = model.DefaultShareDuration
	}
	if now == nil {
		now = time.Now
	}
	return &Share{
		shareStore:      shareStore,
		fileStore:       fileStore,
		defaultDuration: defaultDuration,
		now:             now,
		logger:          logger,
	}
}

// CreateShare creates a link to one of the user's files valid for hours
// (default lifetime when hours is not positive, at most model.MaxShareHours).
func (s *Share) CreateShare(ctx context.Context, userID, fileID uuid.UUID, hours int) (model.Share, error) {
	s.logger.Debug("Share service: creating share",
		"user_id", userID,
		"file_id", fileID)

	if hours > model.MaxShareHours {
		return model.Share{}, model.NewValidationError("expirationHours must not exceed %d", model.MaxShareHours)
	}

	file, err := s.fileStore.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Share{}, model.NewNotFoundError("file not found")
		}
		s.logger.Error("Share service: failed to get file",
			"file_id", fileID,
			"error", err.Error())
		return model.Share{}, model.NewStoreUnavailableError("failed to get file", err)
	}
	if file.OwnerID != userID {
		return model.Share{}, model.NewForbiddenError("file is not owned by user")
	}

	duration := s.defaultDuration
	if hours > 0 {
		duration = time.Duration(hours) * time.Hour
	}

	share, err := s.shareStore.Create(ctx, model.Share{
		ID:        uuid.New(),
		FileID:    fileID,
		OwnerID:   userID,
		ExpiresAt: s.now().Add(duration),
	})
	if err != nil {
		s.logger.Error("Share service: failed to create share",
			"file_id", fileID,
			"error", err.Error())
		return model.Share{}, model.NewStoreUnavailableError("failed to create share", err)
	}

	s.logger.Info("Share service: share created",
		"user_id", userID,
		"share_id", share.ID,
		"expires_at", share.ExpiresAt)

	return share, nil
}

// GetSharedFile resolves a public link. Expired and unknown links look the same.
func (s *Share) GetSharedFile(ctx context.Context, shareID uuid.UUID) (model.SharedFile, error) {
	sf, err := s.shareStore.GetActive(ctx, shareID, s.now())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.SharedFile{}, model.NewNotFoundError("shared file expired or not found")
		}
		s.logger.Error("Share service: failed to get share",
			"share_id", shareID,
			"error", err.Error())
		return model.SharedFile{}, model.NewStoreUnavailableError("failed to get share", err)
	}
	return sf, nil
}

func (s *Share) ListShares(ctx context.Context, userID uuid.UUID) ([]model.SharedFile, error) {
	shares, err := s.shareStore.GetByOwnerID(ctx, userID)
	if err != nil {
		s.logger.Error("Share service: failed to list shares",
			"user_id", userID,
			"error", err.Error())
		return nil, model.NewStoreUnavailableError("failed to list shares", err)
	}
	return shares, nil
}

// DeleteShare expires a link owned by the user immediately.
func (s *Share) DeleteShare(ctx context.Context, userID, shareID uuid.UUID) error {
	if _, err := s.shareStore.Delete(ctx, shareID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewNotFoundError("share not found or not owned by user")
		}
		s.logger.Error("Share service: failed to expire share",
			"share_id", shareID,
			"error", err.Error())
		return model.NewStoreUnavailableError("failed to expire share", err)
	}

	s.logger.Info("Share service: share expired",
		"user_id", userID,
		"share_id", shareID)

	return nil
}
