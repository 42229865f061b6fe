package usecase

import (
	"beauty-go/internal/data/repository"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/cache"
	"beauty-go/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Catalog      CatalogService
	Booking      BookingService
	Review       ReviewService
	Favorite     FavoriteService
	Professional ProfessionalService
	Notification NotificationService
	Admin        AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, jwtManager *auth.Manager, statsCache cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, jwtManager, log),
		Catalog:      NewCatalogService(repo, log),
		Booking:      NewBookingService(repo, log),
		Review:       NewReviewService(repo, log),
		Favorite:     NewFavoriteService(repo, log),
		Professional: NewProfessionalService(repo, log),
		Notification: NewNotificationService(repo, log),
		Admin:        NewAdminService(repo, statsCache, log),
	}
}
