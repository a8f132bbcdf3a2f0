package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// MedicalService defines medical info operations.
type MedicalService interface {
	SaveMedicalInfo(ctx context.Context, userID uuid.UUID, params model.MedicalInfoParams) (model.MedicalInfo, error)
	GetMedicalInfo(ctx context.Context, userID uuid.UUID) (model.MedicalInfo, error)
	DeleteMedicalInfo(ctx context.Context, userID uuid.UUID) error
}

type medicalInfoRequest struct {
	MedicalCondition  string `json:"medicalCondition"`
	MedicalBackground string `json:"medicalBackground"`
	ShareData         bool   `json:"shareData"`
}

type medicalInfoResponse struct {
	UserID            uuid.UUID  `json:"userId"`
	MedicalCondition  string     `json:"medicalCondition"`
	MedicalBackground string     `json:"medicalBackground"`
	ShareData         bool       `json:"shareData"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

func toMedicalInfoResponse(info model.MedicalInfo) medicalInfoResponse {
	resp := medicalInfoResponse{
		UserID:            info.UserID,
		MedicalCondition:  info.MedicalCondition,
		MedicalBackground: info.MedicalBackground,
		ShareData:         info.ShareData,
	}
	if !info.UpdatedAt.IsZero() {
		resp.UpdatedAt = &info.UpdatedAt
	}
	return resp
}

// Medical handles HTTP endpoints for medical info.
type Medical struct {
	base
	medicalService MedicalService
}

// NewMedical creates a new Medical handler.
func NewMedical(medicalService MedicalService, contextManager model.ContextManager, logger *logger.Logger) *Medical {
	return &Medical{
		base:           base{contextManager: contextManager, logger: logger},
		medicalService: medicalService,
	}
}

// SaveMedicalInfo creates or replaces the user's medical info.
// POST /medical-info
func (h *Medical) SaveMedicalInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req medicalInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Medical handler: bad save request", err)
		return
	}

	info, err := h.medicalService.SaveMedicalInfo(r.Context(), userID, model.MedicalInfoParams{
		MedicalCondition:  req.MedicalCondition,
		MedicalBackground: req.MedicalBackground,
		ShareData:         req.ShareData,
	})
	if err != nil {
		h.fail(w, r, "Medical handler: save medical info failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toMedicalInfoResponse(info))
}

// GetMedicalInfo returns the user's medical info, empty when none was saved.
// GET /medical-info
func (h *Medical) GetMedicalInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	info, err := h.medicalService.GetMedicalInfo(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Medical handler: get medical info failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toMedicalInfoResponse(info))
}

// DeleteMedicalInfo removes the user's medical info.
// DELETE /medical-info
func (h *Medical) DeleteMedicalInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.medicalService.DeleteMedicalInfo(r.Context(), userID); err != nil {
		h.fail(w, r, "Medical handler: delete medical info failed", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Medical info deleted successfully"})
}
