package response

import (
	"time"

	"beauty-go/internal/data/entity"
)

// UserSummary is the public slice of a counterparty's profile exposed on a
// booking row.
type UserSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

type ServiceSummary struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Category entity.ServiceCategory `json:"category"`
	Price    float64                `json:"price"`
	Duration int                    `json:"duration"`
}

type PaymentResponse struct {
	ID                 string               `json:"id"`
	BookingID          string               `json:"bookingId"`
	Amount             float64              `json:"amount"`
	PlatformFee        float64              `json:"platformFee"`
	ProfessionalAmount float64              `json:"professionalAmount"`
	PaymentMethod      string               `json:"paymentMethod"`
	Status             entity.PaymentStatus `json:"status"`
	CreatedAt          time.Time            `json:"createdAt"`
}

type ReviewSummary struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	ClientID       string               `json:"clientId"`
	ProfessionalID string               `json:"professionalId"`
	ServiceID      string               `json:"serviceId"`
	ScheduledDate  string               `json:"scheduledDate"` // 2006-01-02
	ScheduledTime  string               `json:"scheduledTime"` // HH:MM
	Status         entity.BookingStatus `json:"status"`
	TotalAmount    float64              `json:"totalAmount"`
	Address        string               `json:"address"`
	City           string               `json:"city"`
	State          string               `json:"state,omitempty"`
	ZipCode        string               `json:"zipCode"`
	Notes          string               `json:"notes,omitempty"`
	Service        *ServiceSummary      `json:"service,omitempty"`
	Client         *UserSummary         `json:"client,omitempty"`
	Professional   *UserSummary         `json:"professional,omitempty"`
	Payment        *PaymentResponse     `json:"payment,omitempty"`
	Review         *ReviewSummary       `json:"review,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// CreateBookingResponse returns the booking together with the pending cash
// payment created in the same transaction.
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Payment PaymentResponse `json:"payment"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 payment.ID.String(),
		BookingID:          payment.BookingID.String(),
		Amount:             payment.Amount,
		PlatformFee:        payment.PlatformFee,
		ProfessionalAmount: payment.ProfessionalAmount,
		PaymentMethod:      payment.PaymentMethod,
		Status:             payment.Status,
		CreatedAt:          payment.CreatedAt,
	}
}

func UserToSummary(user *entity.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:     user.ID.String(),
		Name:   user.Name,
		Avatar: user.Avatar,
		Phone:  user.Phone,
	}
}

func ServiceToSummary(service *entity.Service) *ServiceSummary {
	if service == nil {
		return nil
	}
	return &ServiceSummary{
		ID:       service.ID.String(),
		Name:     service.Name,
		Category: service.Category,
		Price:    service.Price,
		Duration: service.Duration,
	}
}

func ReviewToSummary(review *entity.Review) *ReviewSummary {
	if review == nil {
		return nil
	}
	return &ReviewSummary{
		ID:        review.ID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             booking.ID.String(),
		ClientID:       booking.ClientID.String(),
		ProfessionalID: booking.ProfessionalID.String(),
		ServiceID:      booking.ServiceID.String(),
		ScheduledDate:  booking.ScheduledDate.Format("2006-01-02"),
		ScheduledTime:  booking.ScheduledTime,
		Status:         booking.Status,
		TotalAmount:    booking.TotalAmount,
		Address:        booking.Address,
		City:           booking.City,
		State:          booking.State,
		ZipCode:        booking.ZipCode,
		Notes:          booking.Notes,
		CreatedAt:      booking.CreatedAt,
	}
}
