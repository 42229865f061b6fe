package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// POST /api/reviews - Review a completed booking
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/professionals/{id}/reviews - Reviews for a professional
	r.Get("/api/professionals/{id}/reviews", reviewHandler.GetProfessionalReviews)
}
