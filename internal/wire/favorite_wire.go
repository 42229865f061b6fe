package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// GET /api/favorites - Saved professionals with a service preview
		r.Get("/api/favorites", favoriteHandler.GetFavorites)

		// POST /api/favorites - Save a professional
		r.Post("/api/favorites", favoriteHandler.AddFavorite)

		// GET /api/favorites/{professionalId} - Is this professional saved?
		r.Get("/api/favorites/{professionalId}", favoriteHandler.CheckFavorite)

		// DELETE /api/favorites/{professionalId} - Unsave
		r.Delete("/api/favorites/{professionalId}", favoriteHandler.RemoveFavorite)
	})
}
