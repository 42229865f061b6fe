package entity

import "github.com/google/uuid"

type Review struct {
	Base
	BookingID      uuid.UUID `db:"booking_id"`
	ClientID       uuid.UUID `db:"client_id"`
	ProfessionalID uuid.UUID `db:"professional_id"` // User.ID of the professional
	Rating         int       `db:"rating"`          // 1-5
	Comment        *string   `db:"comment"`
}
