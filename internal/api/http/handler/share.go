package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// ShareService defines share link operations.
type ShareService interface {
	CreateShare(ctx context.Context, userID, fileID uuid.UUID, hours int) (model.Share, error)
	GetSharedFile(ctx context.Context, shareID uuid.UUID) (model.SharedFile, error)
	ListShares(ctx context.Context, userID uuid.UUID) ([]model.SharedFile, error)
	DeleteShare(ctx context.Context, userID, shareID uuid.UUID) error
}

type createShareRequest struct {
	FileID          string `json:"fileId"`
	ExpirationHours int    `json:"expirationHours"`
}

type shareResponse struct {
	ShareID   uuid.UUID `json:"shareId"`
	FileID    uuid.UUID `json:"fileId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type sharedFileResponse struct {
	shareResponse
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	URL      string `json:"url"`
	FileUUID string `json:"fileuuid"`
	IPFSHash string `json:"ipfsHash"`
}

type shareExpiredResponse struct {
	Message string    `json:"message"`
	ShareID uuid.UUID `json:"shareId"`
}

func toShareResponse(s model.Share) shareResponse {
	return shareResponse{
		ShareID:   s.ID,
		FileID:    s.FileID,
		OwnerID:   s.OwnerID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func toSharedFileResponse(sf model.SharedFile) sharedFileResponse {
	return sharedFileResponse{
		shareResponse: toShareResponse(sf.Share),
		FileName:      sf.FileName,
		FileType:      sf.FileType,
		URL:           sf.URL,
		FileUUID:      sf.FileUUID,
		IPFSHash:      sf.IPFSHash,
	}
}

// Share handles HTTP endpoints for share links.
type Share struct {
	base
	shareService ShareService
}

// NewShare creates a new Share handler.
func NewShare(shareService ShareService, contextManager model.ContextManager, logger *logger.Logger) *Share {
	return &Share{
		base:         base{contextManager: contextManager, logger: logger},
		shareService: shareService,
	}
}

// CreateShare creates an expiring link to one of the user's files.
// POST /files/share
func (h *Share) CreateShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createShareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Share handler: bad create request", err)
		return
	}
	if req.FileID == "" {
		h.fail(w, r, "Share handler: bad create request", model.NewValidationError("fileId is required"))
		return
	}
	if req.ExpirationHours < 0 || req.ExpirationHours > model.MaxShareHours {
		h.fail(w, r, "Share handler: bad create request",
			model.NewValidationError("expirationHours must be between 0 and %d", model.MaxShareHours))
		return
	}

	fileID, err := parseUUID(req.FileID, "file id")
	if err != nil {
		h.fail(w, r, "Share handler: bad create request", err)
		return
	}

	share, err := h.shareService.CreateShare(r.Context(), userID, fileID, req.ExpirationHours)
	if err != nil {
		h.fail(w, r, "Share handler: create share failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toShareResponse(share))
}

// GetSharedFile resolves a public link. No authentication.
// GET /files/shared/{shareId}
func (h *Share) GetSharedFile(w http.ResponseWriter, r *http.Request) {
	shareID, err := parseUUID(chi.URLParam(r, "shareId"), "share id")
	if err != nil {
		h.fail(w, r, "Share handler: bad shared file request", err)
		return
	}

	sf, err := h.shareService.GetSharedFile(r.Context(), shareID)
	if err != nil {
		h.fail(w, r, "Share handler: get shared file failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toSharedFileResponse(sf))
}

// ListShares returns the signed-in user's links.
// GET /files/shared/links
func (h *Share) ListShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	shares, err := h.shareService.ListShares(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Share handler: list shares failed", err)
		return
	}

	resp := make([]sharedFileResponse, 0, len(shares))
	for _, sf := range shares {
		resp = append(resp, toSharedFileResponse(sf))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteShare expires a link early.
// DELETE /files/shared/{shareId}
func (h *Share) DeleteShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	shareID, err := parseUUID(chi.URLParam(r, "shareId"), "share id")
	if err != nil {
		h.fail(w, r, "Share handler: bad delete request", err)
		return
	}

	if err := h.shareService.DeleteShare(r.Context(), userID, shareID); err != nil {
		h.fail(w, r, "Share handler: delete share failed", err)
		return
	}

	writeJSON(w, http.StatusOK, shareExpiredResponse{
		Message: "Shared link expired successfully",
		ShareID: shareID,
	})
}
