package adaptor

import (
	"beauty-go/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Booking      *BookingHandler
	Review       *ReviewHandler
	Favorite     *FavoriteHandler
	Professional *ProfessionalHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Review:       NewReviewHandler(service.Review, log),
		Favorite:     NewFavoriteHandler(service.Favorite, log),
		Professional: NewProfessionalHandler(service.Professional, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Admin:        NewAdminHandler(service.Admin, log),
	}
}
