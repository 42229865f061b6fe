package response

import (
	"time"

	"beauty-go/internal/data/entity"
)

type ServiceEarnings struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Earnings float64 `json:"earnings"`
}

type DailyEarnings struct {
	Date     string  `json:"date"` // 2006-01-02
	Earnings float64 `json:"earnings"`
}

type EarningsBooking struct {
	ID            string               `json:"id"`
	ScheduledDate string               `json:"scheduledDate"`
	ScheduledTime string               `json:"scheduledTime"`
	TotalAmount   float64              `json:"totalAmount"`
	ServiceName   string               `json:"serviceName"`
	ClientName    string               `json:"clientName"`
	ClientAvatar  *string              `json:"clientAvatar,omitempty"`
	Payout        float64              `json:"payout"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type EarningsResponse struct {
	TotalEarnings       float64           `json:"totalEarnings"`
	TotalBookings       int               `json:"totalBookings"`
	AverageBookingValue float64           `json:"averageBookingValue"`
	ServiceBreakdown    []ServiceEarnings `json:"serviceBreakdown"`
	ChartData           []DailyEarnings   `json:"chartData"`
	RecentBookings      []EarningsBooking `json:"recentBookings"`
}
