package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/aethercure-server/internal/model"
)

var _ model.ShareStore = (*ShareRepository)(nil)

const sharedFileSelect = `
	SELECT s.id, s.file_id, s.owner_id, s.expires_at, s.created_at,
	       f.file_name, f.file_type, f.url, f.file_uuid, f.ipfs_hash
	FROM file_shares s
	JOIN files f ON f.id = s.file_id`

type ShareRepository struct {
	db *Connection
}

func NewShareRepository(db *Connection) *ShareRepository {
	return &ShareRepository{
		db: db,
	}
}

func scanSharedFile(row pgx.Row) (model.SharedFile, error) {
	var sf model.SharedFile
	err := row.Scan(
		&sf.ID, &sf.FileID, &sf.OwnerID, &sf.ExpiresAt, &sf.CreatedAt,
		&sf.FileName, &sf.FileType, &sf.URL, &sf.FileUUID, &sf.IPFSHash,
	)
	return sf, err
}

func (r *ShareRepository) Create(ctx context.Context, share model.Share) (model.Share, error) {
	query := `INSERT INTO file_shares (id, file_id, owner_id, expires_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, file_id, owner_id, expires_at, created_at`

	var saved model.Share
	err := r.db.QueryRow(ctx, query, share.ID, share.FileID, share.OwnerID, share.ExpiresAt).Scan(
		&saved.ID, &saved.FileID, &saved.OwnerID, &saved.ExpiresAt, &saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Share{}, model.ErrAlreadyExists
		}
		return model.Share{}, fmt.Errorf("failed to create share: %w", err)
	}

	return saved, nil
}

func (r *ShareRepository) GetActive(ctx context.Context, shareID uuid.UUID, now time.Time) (model.SharedFile, error) {
	query := sharedFileSelect + ` WHERE s.id = $1 AND s.expires_at > $2`

	sf, err := scanSharedFile(r.db.QueryRow(ctx, query, shareID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SharedFile{}, model.ErrNotFound
		}
		return model.SharedFile{}, fmt.Errorf("failed to get share: %w", err)
	}

	return sf, nil
}

func (r *ShareRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.SharedFile, error) {
	query := sharedFileSelect + ` WHERE s.owner_id = $1 ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var shares []model.SharedFile
	for rows.Next() {
		sf, err := scanSharedFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, sf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}

	return shares, nil
}

// Delete expires the share immediately. Rows are removed later by the cleanup worker.
func (r *ShareRepository) Delete(ctx context.Context, shareID, ownerID uuid.UUID) (model.Share, error) {
	query := `UPDATE file_shares SET expires_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING id, file_id, owner_id, expires_at, created_at`

	var share model.Share
	err := r.db.QueryRow(ctx, query, shareID, ownerID).Scan(
		&share.ID, &share.FileID, &share.OwnerID, &share.ExpiresAt, &share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Share{}, model.ErrNotFound
		}
		return model.Share{}, fmt.Errorf("failed to expire share: %w", err)
	}

	return share, nil
}
