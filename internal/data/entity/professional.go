package entity

import "github.com/google/uuid"

// ProfessionalProfile holds the business-facing profile of a PROFESSIONAL
// user. Services reference the profile; bookings reference the user.
type ProfessionalProfile struct {
	Base
	UserID        uuid.UUID `db:"user_id"`
	BusinessName  string    `db:"business_name"`
	Bio           *string   `db:"bio"`
	Address       string    `db:"address"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	ZipCode       string    `db:"zip_code"`
	AverageRating float64   `db:"average_rating"`
	TotalReviews  int       `db:"total_reviews"`
}
