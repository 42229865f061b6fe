package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/request"

	"github.com/google/uuid"
)

// seedLegacyBooking inserts a confirmed booking with no payment row, the
// shape of bookings that predate payment tracking.
func seedLegacyBooking(repo *repository.Repository, client, professional *entity.User, service *entity.Service, amount float64) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ClientID:       client.ID,
		ProfessionalID: professional.ID,
		ServiceID:      service.ID,
		ScheduledDate:  now,
		ScheduledTime:  "10:00",
		Status:         entity.BookingStatusConfirmed,
		TotalAmount:    amount,
	}
	bookings := repo.Booking.(*fakeBookingRepo)
	bookings.bookings = append(bookings.bookings, booking)
	return booking
}

func validBookingRequest(serviceID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceID:     serviceID.String(),
		ScheduledDate: "2026-09-15",
		ScheduledTime: "14:30",
		Address:       "1 Main St",
		City:          "Springfield",
		ZipCode:       "12345",
	}
}

func TestCreateBookingConfirmedWithPendingCashPayment(t *testing.T) {
	repo, payments, notifications := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	resp, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	if resp.Booking.Status != entity.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRMED booking, got %s", resp.Booking.Status)
	}
	if resp.Booking.ProfessionalID != professional.ID.String() {
		t.Fatalf("booking should reference the professional's user ID")
	}
	if resp.Booking.TotalAmount != 100 {
		t.Fatalf("expected total 100, got %v", resp.Booking.TotalAmount)
	}

	if resp.Payment.Status != entity.PaymentStatusPending {
		t.Fatalf("expected PENDING payment, got %s", resp.Payment.Status)
	}
	if resp.Payment.PaymentMethod != entity.PaymentMethodCash {
		t.Fatalf("expected CASH payment, got %s", resp.Payment.PaymentMethod)
	}
	if resp.Payment.PlatformFee != 20 || resp.Payment.ProfessionalAmount != 80 {
		t.Fatalf("expected 20/80 split, got %v/%v", resp.Payment.PlatformFee, resp.Payment.ProfessionalAmount)
	}
	if len(payments.payments) != 1 {
		t.Fatalf("expected 1 payment row, got %d", len(payments.payments))
	}

	// Both parties get notified
	got := notifications.forUser(professional.ID)
	if len(got) != 1 || got[0].Type != entity.NotificationBookingRequest {
		t.Fatalf("expected one BOOKING_REQUEST notification, got %v", got)
	}
	got = notifications.forUser(client.ID)
	if len(got) != 1 || got[0].Type != entity.NotificationBookingConfirmed {
		t.Fatalf("expected one BOOKING_CONFIRMED notification, got %v", got)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	req := validBookingRequest(service.ID)
	req.Address = ""

	_, err := svc.CreateBooking(context.Background(), client.ID.String(), req)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingInactiveService(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, service := seedMarketplace(repo, 100)
	repo.Service.Deactivate(context.Background(), service.ID)
	svc := NewBookingService(repo, testLogger())

	_, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateBookingStatusForbiddenForThirdParty(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	resp, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	stranger := uuid.New()
	_, err = svc.UpdateBookingStatus(context.Background(), stranger.String(), resp.Booking.ID,
		&request.UpdateBookingStatusRequest{Status: "CANCELLED"})
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	// The client cannot drive the lifecycle either
	_, err = svc.UpdateBookingStatus(context.Background(), client.ID.String(), resp.Booking.ID,
		&request.UpdateBookingStatusRequest{Status: "CANCELLED"})
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Fatalf("expected forbidden error for client, got %v", err)
	}

	booking, _ := repo.Booking.FindByID(context.Background(), uuid.MustParse(resp.Booking.ID))
	if booking.Status != entity.BookingStatusConfirmed {
		t.Fatalf("booking must be unchanged after rejected updates, got %s", booking.Status)
	}
}

func TestUpdateBookingStatusUnknownBooking(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	_, err := svc.UpdateBookingStatus(context.Background(), client.ID.String(), uuid.New().String(),
		&request.UpdateBookingStatusRequest{Status: "CANCELLED"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	resp, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	_, err = svc.UpdateBookingStatus(context.Background(), client.ID.String(), resp.Booking.ID,
		&request.UpdateBookingStatusRequest{Status: "DONE"})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompleteBookingKeepsRecordedPayment(t *testing.T) {
	repo, payments, notifications := testRepo()
	client, professional, service := seedMarketplace(repo, 50)
	svc := NewBookingService(repo, testLogger())

	resp, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	// The professional marks it completed
	updated, err := svc.UpdateBookingStatus(context.Background(), professional.ID.String(), resp.Booking.ID,
		&request.UpdateBookingStatusRequest{Status: "COMPLETED"})
	if err != nil {
		t.Fatalf("UpdateBookingStatus error: %v", err)
	}
	if updated.Status != entity.BookingStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", updated.Status)
	}

	// Payment rows are write-once: the pending cash payment from creation
	// survives completion untouched.
	if len(payments.payments) != 1 {
		t.Fatalf("expected 1 payment row, got %d", len(payments.payments))
	}
	payment := payments.payments[0]
	if payment.Status != entity.PaymentStatusPending {
		t.Fatalf("expected the recorded payment to stay PENDING, got %s", payment.Status)
	}
	if payment.PlatformFee != 10 || payment.ProfessionalAmount != 40 {
		t.Fatalf("expected 10/40 split, got %v/%v", payment.PlatformFee, payment.ProfessionalAmount)
	}

	// Client hears about the completion
	got := notifications.forUser(client.ID)
	if len(got) == 0 {
		t.Fatalf("expected a completion notification for the client")
	}
}

func TestCompleteBookingWithoutPaymentBackfills(t *testing.T) {
	repo, payments, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	booking := seedLegacyBooking(repo, client, professional, service, 100)

	updated, err := svc.UpdateBookingStatus(context.Background(), professional.ID.String(), booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "COMPLETED"})
	if err != nil {
		t.Fatalf("UpdateBookingStatus error: %v", err)
	}
	if updated.Status != entity.BookingStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", updated.Status)
	}

	if len(payments.payments) != 1 {
		t.Fatalf("expected a backfilled payment row, got %d", len(payments.payments))
	}
	payment := payments.payments[0]
	if payment.Status != entity.PaymentStatusCompleted {
		t.Fatalf("expected a COMPLETED payment, got %s", payment.Status)
	}
	if payment.Amount != 100 || payment.PlatformFee != 20 || payment.ProfessionalAmount != 80 {
		t.Fatalf("expected 100 with 20/80 split, got %v (%v/%v)",
			payment.Amount, payment.PlatformFee, payment.ProfessionalAmount)
	}
	if payment.UserID != client.ID {
		t.Fatalf("backfilled payment must belong to the client")
	}
	if payment.PaymentMethod != entity.PaymentMethodCash {
		t.Fatalf("expected CASH, got %s", payment.PaymentMethod)
	}
}

func TestCompleteBookingTwiceIsIdempotent(t *testing.T) {
	repo, payments, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 50)
	svc := NewBookingService(repo, testLogger())

	booking := seedLegacyBooking(repo, client, professional, service, 50)

	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateBookingStatus(context.Background(), professional.ID.String(), booking.ID.String(),
			&request.UpdateBookingStatusRequest{Status: "COMPLETED"}); err != nil {
			t.Fatalf("UpdateBookingStatus round %d error: %v", i+1, err)
		}
	}

	if len(payments.payments) != 1 {
		t.Fatalf("expected exactly 1 payment row after re-completion, got %d", len(payments.payments))
	}
	if payments.payments[0].Status != entity.PaymentStatusCompleted {
		t.Fatalf("expected payment to stay COMPLETED, got %s", payments.payments[0].Status)
	}
}

func TestGetUserBookingsScopedByRole(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	svc := NewBookingService(repo, testLogger())

	if _, err := svc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID)); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	asClient, err := svc.GetUserBookings(context.Background(), client.ID.String(), "CLIENT", "")
	if err != nil {
		t.Fatalf("GetUserBookings (client) error: %v", err)
	}
	if len(asClient) != 1 {
		t.Fatalf("expected 1 booking for client, got %d", len(asClient))
	}
	if asClient[0].Professional == nil || asClient[0].Professional.ID != professional.ID.String() {
		t.Fatalf("client view should carry the professional as counterparty")
	}
	if asClient[0].Payment == nil {
		t.Fatalf("client view should include the payment")
	}

	asPro, err := svc.GetUserBookings(context.Background(), professional.ID.String(), "PROFESSIONAL", "")
	if err != nil {
		t.Fatalf("GetUserBookings (professional) error: %v", err)
	}
	if len(asPro) != 1 {
		t.Fatalf("expected 1 booking for professional, got %d", len(asPro))
	}
	if asPro[0].Client == nil || asPro[0].Client.ID != client.ID.String() {
		t.Fatalf("professional view should carry the client as counterparty")
	}

	// Status filter
	cancelled, err := svc.GetUserBookings(context.Background(), client.ID.String(), "CLIENT", "CANCELLED")
	if err != nil {
		t.Fatalf("GetUserBookings (filtered) error: %v", err)
	}
	if len(cancelled) != 0 {
		t.Fatalf("expected no cancelled bookings, got %d", len(cancelled))
	}
}
