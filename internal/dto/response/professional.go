package response

import (
	"beauty-go/internal/data/entity"
)

type ProfessionalResponse struct {
	UserID             string                    `json:"userId"`
	Name               string                    `json:"name"`
	Avatar             *string                   `json:"avatar,omitempty"`
	VerificationStatus entity.VerificationStatus `json:"verificationStatus"`
	BusinessName       string                    `json:"businessName"`
	Bio                *string                   `json:"bio,omitempty"`
	City               string                    `json:"city,omitempty"`
	State              string                    `json:"state,omitempty"`
	AverageRating      float64                   `json:"averageRating"`
	TotalReviews       int                       `json:"totalReviews"`
	Services           []ServiceResponse         `json:"services"`
	Reviews            []ReviewResponse          `json:"reviews"`
}

type VerificationStatusResponse struct {
	Status entity.VerificationStatus `json:"status"`
}
