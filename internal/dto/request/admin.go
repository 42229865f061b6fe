package request

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type VerificationReviewRequest struct {
	UserID   string `json:"userId" validate:"required,uuid4"`
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	Reason   string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
