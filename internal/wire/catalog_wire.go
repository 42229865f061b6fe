package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (professionals) ====================
	// Registered before the public {id} route so "mine" is not swallowed
	// by the wildcard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// GET /api/services/mine - Own services, including inactive
		r.Get("/api/services/mine", catalogHandler.GetMyServices)

		// POST /api/services - Publish a service
		r.Post("/api/services", catalogHandler.CreateService)

		// PATCH /api/services/{id} - Edit a service
		r.Patch("/api/services/{id}", catalogHandler.UpdateService)

		// DELETE /api/services/{id} - Deactivate a service
		r.Delete("/api/services/{id}", catalogHandler.DeleteService)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Browse the catalog (?category=&search=)
	r.Get("/api/services", catalogHandler.ListServices)

	// GET /api/services/{id} - Service detail with reviews
	r.Get("/api/services/{id}", catalogHandler.GetService)
}
