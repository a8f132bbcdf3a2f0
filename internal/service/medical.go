package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/security"
)

// Medical stores the free-text medical profile of a user.
type Medical struct {
	store     model.MedicalInfoStore
	sanitizer security.Sanitizer
	logger    *logger.Logger
}

// NewMedical creates a Medical service that sanitises free text with sanitizer.
func NewMedical(store model.MedicalInfoStore, sanitizer security.Sanitizer, logger *logger.Logger) *Medical {
	return &Medical{
		store:     store,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (s *Medical) SaveMedicalInfo(ctx context.Context, userID uuid.UUID, params model.MedicalInfoParams) (model.MedicalInfo, error) {
	info, err := s.store.Upsert(ctx, model.MedicalInfo{
		UserID:            userID,
		MedicalCondition:  s.sanitizer.Sanitize(params.MedicalCondition),
		MedicalBackground: s.sanitizer.Sanitize(params.MedicalBackground),
		ShareData:         params.ShareData,
	})
	if err != nil {
		s.logger.Error("Medical service: failed to save medical info",
			"user_id", userID,
			"error", err.Error())
		return model.MedicalInfo{}, model.NewStoreUnavailableError("failed to save medical info", err)
	}

	s.logger.Info("Medical service: medical info saved",
		"user_id", userID)

	return info, nil
}

// GetMedicalInfo returns an empty record for users who never saved one.
func (s *Medical) GetMedicalInfo(ctx context.Context, userID uuid.UUID) (model.MedicalInfo, error) {
	info, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.MedicalInfo{UserID: userID}, nil
		}
		s.logger.Error("Medical service: failed to get medical info",
			"user_id", userID,
			"error", err.Error())
		return model.MedicalInfo{}, model.NewStoreUnavailableError("failed to get medical info", err)
	}
	return info, nil
}

func (s *Medical) DeleteMedicalInfo(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.store.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewNotFoundError("medical info not found")
		}
		s.logger.Error("Medical service: failed to delete medical info",
			"user_id", userID,
			"error", err.Error())
		return model.NewStoreUnavailableError("failed to delete medical info", err)
	}

	s.logger.Info("Medical service: medical info deleted",
		"user_id", userID)

	return nil
}
