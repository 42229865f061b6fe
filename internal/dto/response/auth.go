package response

import (
	"time"

	"beauty-go/internal/data/entity"
)

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	Phone              *string                   `json:"phone,omitempty"`
	Avatar             *string                   `json:"avatar,omitempty"`
	Role               entity.UserRole           `json:"role"`
	VerificationStatus entity.VerificationStatus `json:"verificationStatus"`
	IsActive           bool                      `json:"isActive"`
	CreatedAt          time.Time                 `json:"createdAt"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Avatar:             user.Avatar,
		Role:               user.Role,
		VerificationStatus: user.VerificationStatus,
		IsActive:           user.IsActive,
		CreatedAt:          user.CreatedAt,
	}
}
