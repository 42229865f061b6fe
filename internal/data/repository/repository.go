package repository

import (
	"beauty-go/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Professional ProfessionalRepository
	Service      ServiceRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	Review       ReviewRepository
	Favorite     FavoriteRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Professional: NewProfessionalRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Favorite:     NewFavoriteRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
