package entity

import "github.com/google/uuid"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentMethodCash is the only settlement method in this domain; money
// changes hands in person and the platform only records it.
const PaymentMethodCash = "CASH"

// PlatformFeeRate is the flat commission retained by the marketplace.
const PlatformFeeRate = 0.20

// SplitAmount computes the platform fee and the professional payout for a
// booking amount. Single source for the 20/80 split; platformFee +
// professionalAmount always equals amount.
func SplitAmount(amount float64) (platformFee, professionalAmount float64) {
	platformFee = amount * PlatformFeeRate
	return platformFee, amount - platformFee
}

type Payment struct {
	Base
	BookingID          uuid.UUID     `db:"booking_id"`
	UserID             uuid.UUID     `db:"user_id"` // paying client
	Amount             float64       `db:"amount"`
	PlatformFee        float64       `db:"platform_fee"`
	ProfessionalAmount float64       `db:"professional_amount"`
	PaymentMethod      string        `db:"payment_method"`
	Status             PaymentStatus `db:"status"`
}
