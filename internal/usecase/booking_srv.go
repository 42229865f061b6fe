package usecase

import (
	"context"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/request"
	"beauty-go/internal/dto/response"
	"beauty-go/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking books an active service for the client. The booking is
	// confirmed immediately and a pending cash payment is recorded in the
	// same transaction.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	// GetUserBookings lists the caller's bookings: as client for CLIENT
	// callers, as provider for PROFESSIONAL callers. status filters when
	// non-empty.
	GetUserBookings(ctx context.Context, userID, role, status string) ([]response.BookingResponse, error)
	// UpdateBookingStatus moves a booking to any of the six states; only
	// the assigned professional may call it. Moving to COMPLETED records a
	// settled cash payment, in the same transaction, for bookings that
	// have none; an existing payment row is never rewritten.
	UpdateBookingStatus(ctx context.Context, userID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", req.ServiceID, err)
	}

	// Service must exist and be active
	service, err := s.repo.Service.FindActiveByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to load service", zap.Error(err), zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("failed to load service")
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	// Resolve the owning professional; bookings reference the user, not the
	// business profile.
	profile, err := s.repo.Professional.FindByID(ctx, service.ProfessionalID)
	if err != nil || profile == nil {
		s.log.Error("Failed to resolve professional for service",
			zap.Error(err), zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled date %s: %w", req.ScheduledDate, err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ClientID:       userUUID,
		ProfessionalID: profile.UserID,
		ServiceID:      service.ID,
		ScheduledDate:  scheduledDate,
		ScheduledTime:  req.ScheduledTime,
		Status:         entity.BookingStatusConfirmed,
		TotalAmount:    service.Price, // snapshot at creation
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Notes:          req.Notes,
	}

	platformFee, professionalAmount := entity.SplitAmount(service.Price)
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:          booking.ID,
		UserID:             userUUID,
		Amount:             service.Price,
		PlatformFee:        platformFee,
		ProfessionalAmount: professionalAmount,
		PaymentMethod:      entity.PaymentMethodCash,
		Status:             entity.PaymentStatusPending,
	}

	if err := s.repo.Booking.CreateWithPayment(ctx, booking, payment); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("client_id", userID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("client_id", userID),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	// Notify both parties. Best-effort: the booking is already committed,
	// a failed insert only costs the in-app message.
	s.notify(ctx, profile.UserID, entity.NotificationBookingRequest,
		"New booking",
		fmt.Sprintf("%s on %s at %s has been booked", service.Name, req.ScheduledDate, req.ScheduledTime),
		booking.ID)
	s.notify(ctx, userUUID, entity.NotificationBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Your booking for %s on %s at %s is confirmed", service.Name, req.ScheduledDate, req.ScheduledTime),
		booking.ID)

	bookingResp := response.BookingToResponse(booking)
	bookingResp.Service = response.ServiceToSummary(service)

	return &response.CreateBookingResponse{
		Booking: bookingResp,
		Payment: response.PaymentToResponse(payment),
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID, role, status string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	var statusFilter *entity.BookingStatus
	if status != "" {
		if !entity.IsValidBookingStatus(status) {
			return nil, fmt.Errorf("invalid booking status %s", status)
		}
		bs := entity.BookingStatus(status)
		statusFilter = &bs
	}

	var bookings []*entity.Booking
	if role == string(entity.RoleProfessional) {
		bookings, err = s.repo.Booking.FindByProfessional(ctx, userUUID, statusFilter)
	} else {
		bookings, err = s.repo.Booking.FindByClient(ctx, userUUID, statusFilter)
	}
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bookings")
	}

	// Expand relations per row. Lookups that fail just leave the field
	// empty; the list itself still renders.
	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, s.expandBooking(ctx, booking, role))
	}

	return responses, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, userID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Only the assigned professional drives the lifecycle. Any status may
	// be set from any state; there is no transition matrix.
	if booking.ProfessionalID != userUUID {
		return nil, fmt.Errorf("forbidden: booking belongs to another professional")
	}

	newStatus := entity.BookingStatus(req.Status)

	// COMPLETED backfills the cash payment, inside the status transaction,
	// for bookings that have none. A recorded payment is left untouched.
	var settlement *entity.Payment
	if newStatus == entity.BookingStatusCompleted {
		settlement, err = s.settlementPayment(ctx, booking)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Booking.UpdateStatusWithPayment(ctx, bookingUUID, newStatus, settlement); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("failed to update booking status")
	}
	booking.Status = newStatus

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
		zap.String("updated_by", userID),
	)

	// Status notifications go to the client; it is the professional who
	// normally drives the lifecycle.
	switch newStatus {
	case entity.BookingStatusConfirmed:
		s.notify(ctx, booking.ClientID, entity.NotificationBookingConfirmed,
			"Booking confirmed", "Your booking has been confirmed", booking.ID)
	case entity.BookingStatusCancelled:
		s.notify(ctx, booking.ClientID, entity.NotificationBookingCancelled,
			"Booking cancelled", "Your booking has been cancelled", booking.ID)
	case entity.BookingStatusCompleted:
		s.notify(ctx, booking.ClientID, entity.NotificationGeneral,
			"Booking completed", "Your booking is complete. Leave a review!", booking.ID)
	}

	resp := s.expandBooking(ctx, booking, "")
	return &resp, nil
}

// settlementPayment returns the payment row to insert when a booking
// completes: a fresh COMPLETED payment if none was recorded, nil
// otherwise. Payment rows are write-once; the pending cash payment from
// creation stays pending, completion never rewrites it.
func (s *bookingService) settlementPayment(ctx context.Context, booking *entity.Booking) (*entity.Payment, error) {
	existing, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to load payment")
	}
	if existing != nil {
		return nil, nil
	}

	platformFee, professionalAmount := entity.SplitAmount(booking.TotalAmount)
	now := time.Now()
	return &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:          booking.ID,
		UserID:             booking.ClientID,
		Amount:             booking.TotalAmount,
		PlatformFee:        platformFee,
		ProfessionalAmount: professionalAmount,
		PaymentMethod:      entity.PaymentMethodCash,
		Status:             entity.PaymentStatusCompleted,
	}, nil
}

// expandBooking attaches service, counterparty, payment and review to a
// booking row. role picks which party is the counterparty; both are
// attached when role is empty.
func (s *bookingService) expandBooking(ctx context.Context, booking *entity.Booking, role string) response.BookingResponse {
	resp := response.BookingToResponse(booking)

	if service, err := s.repo.Service.FindByID(ctx, booking.ServiceID); err == nil {
		resp.Service = response.ServiceToSummary(service)
	}

	if role != string(entity.RoleProfessional) {
		if professional, err := s.repo.User.FindByID(ctx, booking.ProfessionalID); err == nil {
			resp.Professional = response.UserToSummary(professional)
		}
	}
	if role != string(entity.RoleClient) {
		if client, err := s.repo.User.FindByID(ctx, booking.ClientID); err == nil {
			resp.Client = response.UserToSummary(client)
		}
	}

	if payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID); err == nil && payment != nil {
		p := response.PaymentToResponse(payment)
		resp.Payment = &p
	}

	if review, err := s.repo.Review.FindByBookingID(ctx, booking.ID); err == nil {
		resp.Review = response.ReviewToSummary(review)
	}

	return resp
}

// notify inserts an in-app notification, logging but never returning a
// failure.
func (s *bookingService) notify(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string, bookingID uuid.UUID) {
	data := fmt.Sprintf(`{"bookingId":%q}`, bookingID.String())
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data:    &data,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("type", string(notifType)),
		)
	}
}
