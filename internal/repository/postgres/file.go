package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/aethercure-server/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

const fileColumns = `id, owner_id, url, file_uuid, ipfs_hash, file_name, file_type, file_size, expiration_time, created_at, updated_at`

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

func scanFile(row pgx.Row) (model.File, error) {
	var file model.File
	err := row.Scan(
		&file.ID, &file.OwnerID, &file.URL, &file.FileUUID, &file.IPFSHash,
		&file.FileName, &file.FileType, &file.FileSize, &file.ExpirationTime,
		&file.CreatedAt, &file.UpdatedAt,
	)
	return file, err
}

func (r *FileRepository) Create(ctx context.Context, file model.File) (model.File, error) {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}

	query := `INSERT INTO files (id, owner_id, url, file_uuid, ipfs_hash, file_name, file_type, file_size, expiration_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRow(ctx, query,
		file.ID, file.OwnerID, file.URL, file.FileUUID, file.IPFSHash,
		file.FileName, file.FileType, file.FileSize, file.ExpirationTime,
	))
	if err != nil {
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return saved, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	file, err := scanFile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file: %w", err)
	}

	return file, nil
}

func (r *FileRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []model.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

func (r *FileRepository) Update(ctx context.Context, id, ownerID uuid.UUID, update model.FileUpdate) (model.File, error) {
	var b setBuilder
	if update.FileName != nil {
		b.add("file_name", *update.FileName)
	}
	if update.FileType != nil {
		b.add("file_type", *update.FileType)
	}
	if update.ExpirationTime != nil {
		b.add("expiration_time", *update.ExpirationTime)
	}
	if b.empty() {
		return model.File{}, fmt.Errorf("failed to update file: no fields to update")
	}

	query, args := b.build("files", fileColumns, []string{"id", "owner_id"}, id, ownerID)

	file, err := scanFile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to update file: %w", err)
	}

	return file, nil
}

func (r *FileRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (model.File, error) {
	query := `DELETE FROM files WHERE id = $1 AND owner_id = $2 RETURNING ` + fileColumns

	file, err := scanFile(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to delete file: %w", err)
	}

	return file, nil
}
