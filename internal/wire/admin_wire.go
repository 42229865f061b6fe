package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/stats - Dashboard aggregates
		r.Get("/api/admin/stats", adminHandler.GetStats)

		// GET /api/admin/users - Paginated user list
		r.Get("/api/admin/users", adminHandler.GetUsers)

		// PATCH /api/admin/users/{id}/status - Activate / deactivate a user
		r.Patch("/api/admin/users/{id}/status", adminHandler.UpdateUserStatus)

		// POST /api/admin/verifications - Approve or reject a professional
		r.Post("/api/admin/verifications", adminHandler.ReviewVerification)
	})
}
