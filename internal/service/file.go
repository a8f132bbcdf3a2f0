package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/security"
)

// File manages metadata of files kept in external storage.
type File struct {
	fileStore model.FileStore
	sanitizer security.Sanitizer
	logger    *logger.Logger
}

// NewFile creates a File service that sanitises file names with sanitizer.
func NewFile(fileStore model.FileStore, sanitizer security.Sanitizer, logger *logger.Logger) *File {
	return &File{
		fileStore: fileStore,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (s *File) CreateFile(ctx context.Context, userID uuid.UUID, params model.CreateFileParams) (model.File, error) {
	s.logger.Debug("File service: creating file",
		"user_id", userID,
		"file_uuid", params.FileUUID)

	name := s.sanitizer.Sanitize(params.FileName)
	if strings.TrimSpace(params.URL) == "" || strings.TrimSpace(params.FileUUID) == "" ||
		strings.TrimSpace(params.IPFSHash) == "" || name == "" {
		return model.File{}, model.NewValidationError("url, fileuuid, ipfsHash and fileName are required")
	}
	if params.FileSize < 0 {
		return model.File{}, model.NewValidationError("fileSize must not be negative")
	}

	fileType := strings.TrimSpace(params.FileType)
	if fileType == "" {
		fileType = model.DefaultFileType
	}

	file, err := s.fileStore.Create(ctx, model.File{
		ID:             uuid.New(),
		OwnerID:        userID,
		URL:            strings.TrimSpace(params.URL),
		FileUUID:       strings.TrimSpace(params.FileUUID),
		IPFSHash:       strings.TrimSpace(params.IPFSHash),
		FileName:       name,
		FileType:       fileType,
		FileSize:       params.FileSize,
		ExpirationTime: params.ExpirationTime,
	})
	if err != nil {
		s.logger.Error("File service: failed to create file",
			"user_id", userID,
			"error", err.Error())
		return model.File{}, model.NewStoreUnavailableError("failed to save file", err)
	}

	s.logger.Info("File service: file created",
		"user_id", userID,
		"file_id", file.ID)

	return file, nil
}

func (s *File) ListFiles(ctx context.Context, userID uuid.UUID) ([]model.File, error) {
	files, err := s.fileStore.GetByOwnerID(ctx, userID)
	if err != nil {
		s.logger.Error("File service: failed to list files",
			"user_id", userID,
			"error", err.Error())
		return nil, model.NewStoreUnavailableError("failed to list files", err)
	}
	return files, nil
}

func (s *File) UpdateFile(ctx context.Context, userID, fileID uuid.UUID, update model.FileUpdate) (model.File, error) {
	if update.IsEmpty() {
		return model.File{}, model.NewValidationError("no fields to update")
	}
	if update.FileName != nil {
		name := s.sanitizer.Sanitize(*update.FileName)
		if name == "" {
			return model.File{}, model.NewValidationError("fileName must not be empty")
		}
		update.FileName = &name
	}
	if update.FileType != nil && strings.TrimSpace(*update.FileType) == "" {
		fileType := model.DefaultFileType
		update.FileType = &fileType
	}

	file, err := s.fileStore.Update(ctx, fileID, userID, update)
	if err != nil {
		return model.File{}, s.storeError("failed to update file", fileID, err)
	}

	s.logger.Info("File service: file updated",
		"user_id", userID,
		"file_id", fileID)

	return file, nil
}

func (s *File) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) (model.File, error) {
	file, err := s.fileStore.Delete(ctx, fileID, userID)
	if err != nil {
		return model.File{}, s.storeError("failed to delete file", fileID, err)
	}

	s.logger.Info("File service: file deleted",
		"user_id", userID,
		"file_id", fileID)

	return file, nil
}

func (s *File) storeError(message string, fileID uuid.UUID, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("file not found or not owned by user")
	}
	s.logger.Error("File service: "+message,
		"file_id", fileID,
		"error", err.Error())
	return model.NewStoreUnavailableError(message, err)
}
