package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusNoShow     BookingStatus = "NO_SHOW"
)

// IsValidBookingStatus reports whether s is one of the six booking states.
// Transitions between states are caller-driven and not checked here.
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

type Booking struct {
	Base
	ClientID       uuid.UUID     `db:"client_id"`
	ProfessionalID uuid.UUID     `db:"professional_id"` // User.ID of the professional
	ServiceID      uuid.UUID     `db:"service_id"`
	ScheduledDate  time.Time     `db:"scheduled_date"`
	ScheduledTime  string        `db:"scheduled_time"` // "HH:MM"
	Status         BookingStatus `db:"status"`
	// TotalAmount is snapshotted from the service price at creation and
	// never recomputed, even if the service price changes later.
	TotalAmount float64 `db:"total_amount"`
	Address     string  `db:"address"`
	City        string  `db:"city"`
	State       string  `db:"state"`
	ZipCode     string  `db:"zip_code"`
	Notes       string  `db:"notes"`
}
