package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// POST /api/bookings - Book a service (confirmed + pending cash payment)
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Booking history for the caller's side
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// PATCH /api/bookings/{id}/status - Move the booking through its lifecycle
		r.Patch("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
