package response

import (
	"time"

	"beauty-go/internal/data/entity"
)

type ProfessionalSummary struct {
	ProfileID          string                    `json:"profileId"`
	UserID             string                    `json:"userId"`
	Name               string                    `json:"name"`
	BusinessName       string                    `json:"businessName"`
	Avatar             *string                   `json:"avatar,omitempty"`
	AverageRating      float64                   `json:"averageRating"`
	TotalReviews       int                       `json:"totalReviews"`
	VerificationStatus entity.VerificationStatus `json:"verificationStatus"`
}

type ServiceResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Category     entity.ServiceCategory `json:"category"`
	Price        float64                `json:"price"`
	Duration     int                    `json:"duration"`
	Images       []string               `json:"images,omitempty"`
	IsActive     bool                   `json:"isActive"`
	Professional *ProfessionalSummary   `json:"professional,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

type ServiceDetailResponse struct {
	ServiceResponse
	Reviews []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"bookingId"`
	ClientID     string    `json:"clientId"`
	ClientName   string    `json:"clientName,omitempty"`
	ClientAvatar *string   `json:"clientAvatar,omitempty"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Helper converters
func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		Price:       service.Price,
		Duration:    service.Duration,
		Images:      service.Images,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
	}
}

func ProfessionalToSummary(profile *entity.ProfessionalProfile, user *entity.User) *ProfessionalSummary {
	if profile == nil || user == nil {
		return nil
	}
	return &ProfessionalSummary{
		ProfileID:          profile.ID.String(),
		UserID:             user.ID.String(),
		Name:               user.Name,
		BusinessName:       profile.BusinessName,
		Avatar:             user.Avatar,
		AverageRating:      profile.AverageRating,
		TotalReviews:       profile.TotalReviews,
		VerificationStatus: user.VerificationStatus,
	}
}

func ReviewToResponse(review *entity.Review, client *entity.User) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID.String(),
		BookingID: review.BookingID.String(),
		ClientID:  review.ClientID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	if client != nil {
		resp.ClientName = client.Name
		resp.ClientAvatar = client.Avatar
	}

	return resp
}
