package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Create account (client or professional)
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Exchange credentials for a token
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/logout - Clear the auth cookie
	r.Post("/api/auth/logout", authHandler.Logout)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// GET /api/auth/me - Current user profile
		r.Get("/api/auth/me", authHandler.GetProfile)
	})
}
