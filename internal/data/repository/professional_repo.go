package repository

import (
	"context"
	"fmt"

	"beauty-go/internal/data/entity"
	"beauty-go/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, profile *entity.ProfessionalProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProfessionalProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}

type professionalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfessionalRepository(db database.PgxIface, log *zap.Logger) ProfessionalRepository {
	return &professionalRepository{
		db:  db,
		log: log.With(zap.String("repository", "professional")),
	}
}

const profileColumns = `id, user_id, business_name, bio, address, city, state, zip_code, average_rating, total_reviews, created_at, updated_at`

func scanProfile(row pgx.Row) (*entity.ProfessionalProfile, error) {
	var profile entity.ProfessionalProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.BusinessName,
		&profile.Bio,
		&profile.Address,
		&profile.City,
		&profile.State,
		&profile.ZipCode,
		&profile.AverageRating,
		&profile.TotalReviews,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *professionalRepository) Create(ctx context.Context, profile *entity.ProfessionalProfile) error {
	query := `
		INSERT INTO professional_profiles (id, user_id, business_name, bio, address, city, state, zip_code, average_rating, total_reviews, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.BusinessName,
		profile.Bio,
		profile.Address,
		profile.City,
		profile.State,
		profile.ZipCode,
		profile.AverageRating,
		profile.TotalReviews,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create professional profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create professional profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *professionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProfessionalProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM professional_profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find professional profile by ID",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return nil, fmt.Errorf("find professional profile by ID %s: %w", id.String(), err)
	}

	return profile, nil
}

func (r *professionalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM professional_profiles WHERE user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find professional profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find professional profile by user ID %s: %w", userID.String(), err)
	}

	return profile, nil
}

func (r *professionalRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	query := `
		UPDATE professional_profiles
		SET average_rating = $2, total_reviews = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, averageRating, totalReviews)
	if err != nil {
		r.log.Error("Failed to update rating stats",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return fmt.Errorf("update rating stats for profile %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("professional profile %s not found", id.String())
	}

	return nil
}
