package request

type AddFavoriteRequest struct {
	ProfessionalID string `json:"professionalId" validate:"required,uuid4"`
}
