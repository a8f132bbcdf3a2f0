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

// FileService defines file metadata operations.
type FileService interface {
	CreateFile(ctx context.Context, userID uuid.UUID, params model.CreateFileParams) (model.File, error)
	ListFiles(ctx context.Context, userID uuid.UUID) ([]model.File, error)
	UpdateFile(ctx context.Context, userID, fileID uuid.UUID, update model.FileUpdate) (model.File, error)
	DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (model.File, error)
}

type createFileRequest struct {
	URL            string `json:"url"`
	FileUUID       string `json:"fileuuid"`
	IPFSHash       string `json:"ipfsHash"`
	FileName       string `json:"fileName"`
	FileType       string `json:"fileType"`
	FileSize       int64  `json:"fileSize"`
	ExpirationTime int64  `json:"expirationTime"`
}

type updateFileRequest struct {
	FileName       *string `json:"fileName"`
	FileType       *string `json:"fileType"`
	ExpirationTime *int64  `json:"expirationTime"`
}

type fileResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"ownerId"`
	URL            string    `json:"url"`
	FileUUID       string    `json:"fileuuid"`
	IPFSHash       string    `json:"ipfsHash"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
	FileSize       int64     `json:"fileSize"`
	ExpirationTime int64     `json:"expirationTime"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type fileDeletedResponse struct {
	Message string       `json:"message"`
	File    fileResponse `json:"file"`
}

func toFileResponse(f model.File) fileResponse {
	return fileResponse{
		ID:             f.ID,
		OwnerID:        f.OwnerID,
		URL:            f.URL,
		FileUUID:       f.FileUUID,
		IPFSHash:       f.IPFSHash,
		FileName:       f.FileName,
		FileType:       f.FileType,
		FileSize:       f.FileSize,
		ExpirationTime: f.ExpirationTime,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// File handles HTTP endpoints for file metadata.
type File struct {
	base
	fileService FileService
}

// NewFile creates a new File handler.
func NewFile(fileService FileService, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{
		base:        base{contextManager: contextManager, logger: logger},
		fileService: fileService,
	}
}

// CreateFile registers an uploaded file.
// POST /files
func (h *File) CreateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "File handler: bad create request", err)
		return
	}

	file, err := h.fileService.CreateFile(r.Context(), userID, model.CreateFileParams{
		URL:            req.URL,
		FileUUID:       req.FileUUID,
		IPFSHash:       req.IPFSHash,
		FileName:       req.FileName,
		FileType:       req.FileType,
		FileSize:       req.FileSize,
		ExpirationTime: req.ExpirationTime,
	})
	if err != nil {
		h.fail(w, r, "File handler: create file failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toFileResponse(file))
}

// ListFiles returns the signed-in user's files.
// GET /files/user
func (h *File) ListFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	files, err := h.fileService.ListFiles(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "File handler: list files failed", err)
		return
	}

	resp := make([]fileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, toFileResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateFile changes file name, type or expiration.
// PATCH /files/{id}
func (h *File) UpdateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	fileID, err := parseUUID(chi.URLParam(r, "id"), "file id")
	if err != nil {
		h.fail(w, r, "File handler: bad update request", err)
		return
	}

	var req updateFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "File handler: bad update request", err)
		return
	}

	file, err := h.fileService.UpdateFile(r.Context(), userID, fileID, model.FileUpdate{
		FileName:       req.FileName,
		FileType:       req.FileType,
		ExpirationTime: req.ExpirationTime,
	})
	if err != nil {
		h.fail(w, r, "File handler: update file failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(file))
}

// DeleteFile removes a file owned by the signed-in user.
// DELETE /files/{id}
func (h *File) DeleteFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	fileID, err := parseUUID(chi.URLParam(r, "id"), "file id")
	if err != nil {
		h.fail(w, r, "File handler: bad delete request", err)
		return
	}

	file, err := h.fileService.DeleteFile(r.Context(), userID, fileID)
	if err != nil {
		h.fail(w, r, "File handler: delete file failed", err)
		return
	}

	writeJSON(w, http.StatusOK, fileDeletedResponse{
		Message: "File deleted successfully",
		File:    toFileResponse(file),
	})
}
