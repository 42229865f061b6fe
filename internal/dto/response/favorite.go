package response

import (
	"time"
)

type FavoriteResponse struct {
	ID           string               `json:"id"`
	Professional *ProfessionalSummary `json:"professional"`
	Services     []ServiceResponse    `json:"services,omitempty"` // up to 3 active services
	CreatedAt    time.Time            `json:"createdAt"`
}
