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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetStats handles GET /api/admin/stats (admin)
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get admin stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetUsers handles GET /api/admin/users (admin)
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	users, err := h.service.GetUsers(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// UpdateUserStatus handles PATCH /api/admin/users/{id}/status (admin)
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	targetUserID := chi.URLParam(r, "id")

	var req request.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateUserStatus(r.Context(), targetUserID, &req); err != nil {
		handleServiceError(w, h.log, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ReviewVerification handles POST /api/admin/verifications (admin)
func (h *AdminHandler) ReviewVerification(w http.ResponseWriter, r *http.Request) {
	var req request.VerificationReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ReviewVerification(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "review verification")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
