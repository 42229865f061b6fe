package usecase

import (
	"context"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/request"
	"beauty-go/internal/dto/response"
	"beauty-go/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID string, req *request.AddFavoriteRequest) error
	RemoveFavorite(ctx context.Context, userID, professionalUserID string) error
	GetFavorites(ctx context.Context, userID string) ([]response.FavoriteResponse, error)
	IsFavorite(ctx context.Context, userID, professionalUserID string) (bool, error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID string, req *request.AddFavoriteRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add favorite validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	professionalUUID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		return fmt.Errorf("invalid professional ID format %s: %w", req.ProfessionalID, err)
	}

	// Target must be an actual professional
	professional, err := s.repo.User.FindByID(ctx, professionalUUID)
	if err != nil {
		s.log.Error("Failed to load professional", zap.Error(err), zap.String("professional_id", req.ProfessionalID))
		return fmt.Errorf("failed to add favorite")
	}
	if professional == nil || professional.Role != entity.RoleProfessional {
		return fmt.Errorf("professional %s not found", req.ProfessionalID)
	}

	// Adding twice is a no-op
	exists, err := s.repo.Favorite.Exists(ctx, userUUID, professionalUUID)
	if err != nil {
		s.log.Error("Failed to check favorite", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to add favorite")
	}
	if exists {
		return nil
	}

	favorite := &entity.Favorite{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:         userUUID,
		ProfessionalID: professionalUUID,
	}

	if err := s.repo.Favorite.Create(ctx, favorite); err != nil {
		s.log.Error("Failed to create favorite", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to add favorite")
	}

	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, professionalUserID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	professionalUUID, err := uuid.Parse(professionalUserID)
	if err != nil {
		return fmt.Errorf("invalid professional ID format %s: %w", professionalUserID, err)
	}

	if err := s.repo.Favorite.Delete(ctx, userUUID, professionalUUID); err != nil {
		s.log.Error("Failed to delete favorite", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to remove favorite")
	}

	return nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) ([]response.FavoriteResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	favorites, err := s.repo.Favorite.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list favorites", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list favorites")
	}

	responses := make([]response.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		resp := response.FavoriteResponse{
			ID:        favorite.ID.String(),
			CreatedAt: favorite.CreatedAt,
		}

		profile, err := s.repo.Professional.FindByUserID(ctx, favorite.ProfessionalID)
		if err != nil || profile == nil {
			// Profile gone; keep the row so the client can still unfavorite.
			responses = append(responses, resp)
			continue
		}

		if user, err := s.repo.User.FindByID(ctx, favorite.ProfessionalID); err == nil {
			resp.Professional = response.ProfessionalToSummary(profile, user)
		}

		// A short preview of what the professional offers
		if services, err := s.repo.Service.FindByProfessionalID(ctx, profile.ID); err == nil {
			for _, service := range services {
				if !service.IsActive {
					continue
				}
				resp.Services = append(resp.Services, response.ServiceToResponse(service))
				if len(resp.Services) == 3 {
					break
				}
			}
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, professionalUserID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	professionalUUID, err := uuid.Parse(professionalUserID)
	if err != nil {
		return false, fmt.Errorf("invalid professional ID format %s: %w", professionalUserID, err)
	}

	exists, err := s.repo.Favorite.Exists(ctx, userUUID, professionalUUID)
	if err != nil {
		s.log.Error("Failed to check favorite", zap.Error(err), zap.String("user_id", userID))
		return false, fmt.Errorf("failed to check favorite")
	}

	return exists, nil
}
