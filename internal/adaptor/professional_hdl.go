package adaptor

import (
	"net/http"

	"beauty-go/internal/usecase"
	"beauty-go/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfessionalHandler struct {
	service usecase.ProfessionalService
	log     *zap.Logger
}

func NewProfessionalHandler(service usecase.ProfessionalService, log *zap.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{
		service: service,
		log:     log.With(zap.String("handler", "professional")),
	}
}

// GetPublicProfile handles GET /api/professionals/{id} (public)
func (h *ProfessionalHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	professionalID := chi.URLParam(r, "id")

	profile, err := h.service.GetPublicProfile(r.Context(), professionalID)
	if err != nil {
		handleServiceError(w, h.log, err, "get public profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetEarnings handles GET /api/professionals/earnings (professional).
// ?period=week|month|year, default month.
func (h *ProfessionalHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	earnings, err := h.service.GetEarnings(r.Context(), userID.String(), r.URL.Query().Get("period"))
	if err != nil {
		handleServiceError(w, h.log, err, "get earnings")
		return
	}

	utils.ResponseSuccess(w, "success", earnings)
}

// GetVerificationStatus handles GET /api/professionals/verification (professional)
func (h *ProfessionalHandler) GetVerificationStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	status, err := h.service.GetVerificationStatus(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get verification status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}
