// internal/wire/wire.go
package wire

import (
	"net/http"

	"beauty-go/internal/adaptor"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/usecase"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/cache"
	"beauty-go/pkg/middleware"
	"beauty-go/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, jwtManager *auth.Manager, statsCache cache.Cache, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, jwtManager, statsCache, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, jwtManager, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	jwtManager *auth.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigin))

	// Apply routes
	wireAuth(r, handler.Auth, jwtManager, logger)
	wireCatalog(r, handler.Catalog, jwtManager, logger)
	wireBooking(r, handler.Booking, jwtManager, logger)
	wireReview(r, handler.Review, jwtManager, logger)
	wireFavorite(r, handler.Favorite, jwtManager, logger)
	wireProfessional(r, handler.Professional, jwtManager, logger)
	wireNotification(r, handler.Notification, jwtManager, logger)
	wireAdmin(r, handler.Admin, jwtManager, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
