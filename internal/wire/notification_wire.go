package wire

import (
	"beauty-go/internal/adaptor"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	jwtManager *auth.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtManager, log))

		// GET /api/notifications - In-app inbox, newest first
		r.Get("/api/notifications", notificationHandler.GetNotifications)

		// PATCH /api/notifications/{id}/read - Mark one as read
		r.Patch("/api/notifications/{id}/read", notificationHandler.MarkRead)
	})

	// ==================== PUBLIC ROUTES ====================
	// POST /api/contact - Contact form, fanned out to admins
	r.Post("/api/contact", notificationHandler.SubmitContact)
}
