package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfessional(
	r chi.Router,
	professionalHandler *adaptor.ProfessionalHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (professionals) ====================
	// Fixed paths before the public {id} wildcard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// GET /api/professionals/earnings - Settlement summary (?period=)
		r.Get("/api/professionals/earnings", professionalHandler.GetEarnings)

		// GET /api/professionals/verification - Own verification status
		r.Get("/api/professionals/verification", professionalHandler.GetVerificationStatus)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/professionals/{id} - Storefront profile
	r.Get("/api/professionals/{id}", professionalHandler.GetPublicProfile)
}
