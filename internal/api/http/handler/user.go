package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// UserService defines profile operations.
type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update model.UserUpdate) (model.User, error)
	UpdateBlockchainID(ctx context.Context, userID uuid.UUID, blockchainID string) (model.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userResponse struct {
	UserID            uuid.UUID `json:"userId"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	BlockchainID      string    `json:"blockchainId,omitempty"`
	ReferenceLocation string    `json:"referenceLocation,omitempty"`
	DataSharable      bool      `json:"dataSharable"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		UserID:            u.ID,
		Email:             u.Email,
		Username:          u.Username,
		BlockchainID:      u.BlockchainID,
		ReferenceLocation: u.ReferenceLocation,
		DataSharable:      u.DataSharable,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// newUserData lists the profile fields a user may change. Passwords go
// through the reset flow.
type newUserData struct {
	Email             *string `json:"email"`
	Username          *string `json:"userName"`
	ReferenceLocation *string `json:"referenceLocation"`
	DataSharable      *bool   `json:"dataSharable"`
}

type updateUserRequest struct {
	NewUserData *newUserData `json:"newUserData"`
}

type updateBlockchainIDRequest struct {
	BlockchainID string `json:"blockchainId"`
}

type blockchainIDResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// User handles HTTP endpoints for user profiles.
type User struct {
	base
	userService UserService
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		base:        base{contextManager: contextManager, logger: logger},
		userService: userService,
	}
}

// GetUser returns the signed-in user's profile.
// GET /getUser
func (h *User) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "User handler: get user failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ListUsers returns all profiles.
// GET /getAllUsers
func (h *User) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userID(w, r); !ok {
		return
	}

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, "User handler: list users failed", err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateUser applies a partial profile update.
// PUT /update
func (h *User) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "User handler: bad update request", err)
		return
	}
	if req.NewUserData == nil {
		h.fail(w, r, "User handler: bad update request", model.NewValidationError("newUserData is required"))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, model.UserUpdate{
		Email:             req.NewUserData.Email,
		Username:          req.NewUserData.Username,
		ReferenceLocation: req.NewUserData.ReferenceLocation,
		DataSharable:      req.NewUserData.DataSharable,
	})
	if err != nil {
		h.fail(w, r, "User handler: update user failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateBlockchainID links the user to an on-chain identity.
// POST /updateBlockchainId
func (h *User) UpdateBlockchainID(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req updateBlockchainIDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "User handler: bad blockchain id request", err)
		return
	}

	user, err := h.userService.UpdateBlockchainID(r.Context(), userID, req.BlockchainID)
	if err != nil {
		h.fail(w, r, "User handler: update blockchain id failed", err)
		return
	}

	writeJSON(w, http.StatusOK, blockchainIDResponse{
		Message: "Blockchain ID updated successfully",
		User:    toUserResponse(user),
	})
}

// DeleteUser removes the signed-in user's account.
// DELETE /delete
func (h *User) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		h.fail(w, r, "User handler: delete user failed", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "UserDeleted"})
}
