package entity

import "github.com/google/uuid"

type ServiceCategory string

const (
	CategoryHairStyling ServiceCategory = "HAIR_STYLING"
	CategoryManicure    ServiceCategory = "MANICURE"
	CategoryPedicure    ServiceCategory = "PEDICURE"
	CategoryMakeup      ServiceCategory = "MAKEUP"
	CategorySkincare    ServiceCategory = "SKINCARE"
	CategoryEyebrows    ServiceCategory = "EYEBROWS"
	CategoryMassage     ServiceCategory = "MASSAGE"
)

type Service struct {
	Base
	ProfessionalID uuid.UUID       `db:"professional_id"` // ProfessionalProfile.ID
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Category       ServiceCategory `db:"category"`
	Price          float64         `db:"price"`
	Duration       int             `db:"duration"` // minutes
	Images         []string        `db:"images"`
	IsActive       bool            `db:"is_active"`
}
