package entity

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationGeneral            NotificationType = "GENERAL"
	NotificationBookingRequest     NotificationType = "BOOKING_REQUEST"
	NotificationBookingConfirmed   NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelled   NotificationType = "BOOKING_CANCELLED"
	NotificationVerificationUpdate NotificationType = "VERIFICATION_UPDATE"
)

// Notification is an advisory message row. Inserts are best-effort and
// never part of a transactional guarantee.
type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Title   string           `db:"title"`
	Message string           `db:"message"`
	Type    NotificationType `db:"type"`
	IsRead  bool             `db:"is_read"`
	Data    *string          `db:"data"` // optional JSON payload
}
