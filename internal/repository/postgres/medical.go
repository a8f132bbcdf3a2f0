package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/aethercure-server/internal/model"
)

var _ model.MedicalInfoStore = (*MedicalRepository)(nil)

const medicalColumns = `id, user_id, medical_condition, medical_background, share_data, created_at, updated_at`

type MedicalRepository struct {
	db *Connection
}

func NewMedicalRepository(db *Connection) *MedicalRepository {
	return &MedicalRepository{
		db: db,
	}
}

func scanMedical(row pgx.Row) (model.MedicalInfo, error) {
	var info model.MedicalInfo
	err := row.Scan(
		&info.ID, &info.UserID, &info.MedicalCondition, &info.MedicalBackground,
		&info.ShareData, &info.CreatedAt, &info.UpdatedAt,
	)
	return info, err
}

func (r *MedicalRepository) Upsert(ctx context.Context, info model.MedicalInfo) (model.MedicalInfo, error) {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}

	query := `INSERT INTO medical_info (id, user_id, medical_condition, medical_background, share_data)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (user_id) DO UPDATE SET
			      medical_condition = EXCLUDED.medical_condition,
			      medical_background = EXCLUDED.medical_background,
			      share_data = EXCLUDED.share_data,
			      updated_at = NOW()
			  RETURNING ` + medicalColumns

	saved, err := scanMedical(r.db.QueryRow(ctx, query,
		info.ID, info.UserID, info.MedicalCondition, info.MedicalBackground, info.ShareData,
	))
	if err != nil {
		return model.MedicalInfo{}, fmt.Errorf("failed to save medical info: %w", err)
	}

	return saved, nil
}

func (r *MedicalRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.MedicalInfo, error) {
	query := `SELECT ` + medicalColumns + ` FROM medical_info WHERE user_id = $1`

	info, err := scanMedical(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MedicalInfo{}, model.ErrNotFound
		}
		return model.MedicalInfo{}, fmt.Errorf("failed to get medical info: %w", err)
	}

	return info, nil
}

func (r *MedicalRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (model.MedicalInfo, error) {
	query := `DELETE FROM medical_info WHERE user_id = $1 RETURNING ` + medicalColumns

	info, err := scanMedical(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MedicalInfo{}, model.ErrNotFound
		}
		return model.MedicalInfo{}, fmt.Errorf("failed to delete medical info: %w", err)
	}

	return info, nil
}
