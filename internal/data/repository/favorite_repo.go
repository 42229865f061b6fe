package repository

import (
	"context"
	"fmt"

	"beauty-go/internal/data/entity"
	"beauty-go/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	Delete(ctx context.Context, userID, professionalID uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	Exists(ctx context.Context, userID, professionalID uuid.UUID) (bool, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, professional_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.ProfessionalID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.String("professional_id", favorite.ProfessionalID.String()),
		)
		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

// Delete is idempotent: removing a non-existent favorite is not an error.
func (r *favoriteRepository) Delete(ctx context.Context, userID, professionalID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND professional_id = $2`

	_, err := r.db.Exec(ctx, query, userID, professionalID)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("professional_id", professionalID.String()),
		)
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, professional_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var favorites []*entity.Favorite
	for rows.Next() {
		var favorite entity.Favorite
		err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.ProfessionalID,
			&favorite.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, professionalID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND professional_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, professionalID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("professional_id", professionalID.String()),
		)
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return exists, nil
}
