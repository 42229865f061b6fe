package adaptor

import (
	"encoding/json"
	"net/http"

	"beauty-go/internal/dto/request"
	"beauty-go/internal/usecase"
	"beauty-go/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// AddFavorite handles POST /api/favorites (protected)
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AddFavorite(r.Context(), userID.String(), &req); err != nil {
		handleServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// RemoveFavorite handles DELETE /api/favorites/{professionalId} (protected)
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	professionalID := chi.URLParam(r, "professionalId")

	if err := h.service.RemoveFavorite(r.Context(), userID.String(), professionalID); err != nil {
		handleServiceError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetFavorites handles GET /api/favorites (protected)
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	favorites, err := h.service.GetFavorites(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get favorites")
		return
	}

	utils.ResponseSuccess(w, "success", favorites)
}

// CheckFavorite handles GET /api/favorites/{professionalId} (protected)
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	professionalID := chi.URLParam(r, "professionalId")

	isFavorite, err := h.service.IsFavorite(r.Context(), userID.String(), professionalID)
	if err != nil {
		handleServiceError(w, h.log, err, "check favorite")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{"isFavorite": isFavorite})
}
