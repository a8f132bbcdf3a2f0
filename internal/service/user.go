package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// User manages account profile data. Passwords are changed only through
// the password reset flow.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, s.storeError("failed to get user", userID, err)
	}
	return user, nil
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, model.NewStoreUnavailableError("failed to list users", err)
	}
	return users, nil
}

// UpdateUser applies a partial profile update. A new email or username must
// not belong to another account.
func (s *User) UpdateUser(ctx context.Context, userID uuid.UUID, update model.UserUpdate) (model.User, error) {
	s.logger.Debug("User service: updating user",
		"user_id", userID)

	if update.IsEmpty() {
		return model.User{}, model.NewValidationError("no fields to update")
	}
	if update.Email != nil {
		trimmed := strings.TrimSpace(*update.Email)
		if trimmed == "" {
			return model.User{}, model.NewValidationError("email must not be empty")
		}
		update.Email = &trimmed
	}
	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			return model.User{}, model.NewValidationError("username must not be empty")
		}
		update.Username = &trimmed
	}

	current, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, s.storeError("failed to get user", userID, err)
	}

	if update.Email != nil && *update.Email != current.Email {
		other, err := s.userStore.GetByEmail(ctx, *update.Email)
		switch {
		case err == nil && other.ID != userID:
			return model.User{}, model.NewConflictError("email already exists")
		case err != nil && !errors.Is(err, model.ErrNotFound):
			return model.User{}, s.storeError("failed to check email", userID, err)
		}
	}

	if update.Username != nil && *update.Username != current.Username {
		taken, err := s.userStore.UsernameExists(ctx, *update.Username)
		if err != nil {
			return model.User{}, s.storeError("failed to check username", userID, err)
		}
		if taken {
			return model.User{}, model.NewConflictError("username already exists")
		}
	}

	user, err := s.userStore.Update(ctx, userID, update)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, model.NewConflictError("email or username already exists")
		}
		return model.User{}, s.storeError("failed to update user", userID, err)
	}

	s.logger.Info("User service: user updated",
		"user_id", userID)

	return user, nil
}

func (s *User) UpdateBlockchainID(ctx context.Context, userID uuid.UUID, blockchainID string) (model.User, error) {
	blockchainID = strings.TrimSpace(blockchainID)
	if blockchainID == "" {
		return model.User{}, model.NewValidationError("blockchain id is required")
	}

	user, err := s.userStore.Update(ctx, userID, model.UserUpdate{BlockchainID: &blockchainID})
	if err != nil {
		return model.User{}, s.storeError("failed to update blockchain id", userID, err)
	}

	s.logger.Info("User service: blockchain id updated",
		"user_id", userID)

	return user, nil
}

func (s *User) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		return s.storeError("failed to delete user", userID, err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", userID)

	return nil
}

func (s *User) storeError(message string, userID uuid.UUID, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("user not found")
	}
	s.logger.Error("User service: "+message,
		"user_id", userID,
		"error", err.Error())
	return model.NewStoreUnavailableError(message, err)
}
