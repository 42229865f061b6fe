package entity

import "github.com/google/uuid"

type Favorite struct {
	BaseSimple
	UserID         uuid.UUID `db:"user_id"`
	ProfessionalID uuid.UUID `db:"professional_id"` // User.ID of the professional
}
