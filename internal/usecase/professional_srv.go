package usecase

import (
	"context"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfessionalService interface {
	// GetPublicProfile is the storefront view: profile, active services and
	// recent reviews.
	GetPublicProfile(ctx context.Context, professionalUserID string) (*response.ProfessionalResponse, error)
	// GetEarnings summarizes completed bookings for the caller over a
	// period: "week", "month" (default) or "year".
	GetEarnings(ctx context.Context, userID, period string) (*response.EarningsResponse, error)
	GetVerificationStatus(ctx context.Context, userID string) (*response.VerificationStatusResponse, error)
}

type professionalService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfessionalService(repo *repository.Repository, log *zap.Logger) ProfessionalService {
	return &professionalService{
		repo: repo,
		log:  log.With(zap.String("service", "professional")),
	}
}

func (s *professionalService) GetPublicProfile(ctx context.Context, professionalUserID string) (*response.ProfessionalResponse, error) {
	professionalUUID, err := uuid.Parse(professionalUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid professional ID format %s: %w", professionalUserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, professionalUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", professionalUserID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil || user.Role != entity.RoleProfessional {
		return nil, fmt.Errorf("professional %s not found", professionalUserID)
	}

	profile, err := s.repo.Professional.FindByUserID(ctx, professionalUUID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", professionalUserID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("professional %s not found", professionalUserID)
	}

	resp := &response.ProfessionalResponse{
		UserID:             user.ID.String(),
		Name:               user.Name,
		Avatar:             user.Avatar,
		VerificationStatus: user.VerificationStatus,
		BusinessName:       profile.BusinessName,
		Bio:                profile.Bio,
		City:               profile.City,
		State:              profile.State,
		AverageRating:      profile.AverageRating,
		TotalReviews:       profile.TotalReviews,
		Services:           []response.ServiceResponse{},
		Reviews:            []response.ReviewResponse{},
	}

	if services, err := s.repo.Service.FindByProfessionalID(ctx, profile.ID); err == nil {
		for _, service := range services {
			if !service.IsActive {
				continue
			}
			resp.Services = append(resp.Services, response.ServiceToResponse(service))
		}
	}

	if reviews, err := s.repo.Review.FindByProfessional(ctx, professionalUUID, 20); err == nil {
		for _, review := range reviews {
			client, _ := s.repo.User.FindByID(ctx, review.ClientID)
			resp.Reviews = append(resp.Reviews, response.ReviewToResponse(review, client))
		}
	}

	return resp, nil
}

func (s *professionalService) GetEarnings(ctx context.Context, userID, period string) (*response.EarningsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	now := time.Now()
	var from time.Time
	switch period {
	case "week":
		from = now.AddDate(0, 0, -7)
	case "year":
		from = now.AddDate(-1, 0, 0)
	case "", "month":
		from = now.AddDate(0, -1, 0)
	default:
		return nil, fmt.Errorf("invalid period %s", period)
	}

	bookings, err := s.repo.Booking.FindCompletedByProfessionalBetween(ctx, userUUID, from, now)
	if err != nil {
		s.log.Error("Failed to load completed bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load earnings")
	}

	resp := &response.EarningsResponse{
		ServiceBreakdown: []response.ServiceEarnings{},
		ChartData:        []response.DailyEarnings{},
		RecentBookings:   []response.EarningsBooking{},
	}

	var grossTotal float64
	byService := map[string]*response.ServiceEarnings{}
	byDay := map[string]float64{}
	serviceNames := map[uuid.UUID]string{}

	for _, booking := range bookings {
		_, payout := entity.SplitAmount(booking.TotalAmount)
		resp.TotalEarnings += payout
		grossTotal += booking.TotalAmount
		resp.TotalBookings++

		name, ok := serviceNames[booking.ServiceID]
		if !ok {
			name = "Unknown service"
			if service, err := s.repo.Service.FindByID(ctx, booking.ServiceID); err == nil && service != nil {
				name = service.Name
			}
			serviceNames[booking.ServiceID] = name
		}

		if entry, ok := byService[name]; ok {
			entry.Count++
			entry.Earnings += payout
		} else {
			byService[name] = &response.ServiceEarnings{Name: name, Count: 1, Earnings: payout}
		}

		byDay[booking.CreatedAt.Format("2006-01-02")] += payout

		if len(resp.RecentBookings) < 5 {
			resp.RecentBookings = append(resp.RecentBookings, s.earningsBooking(ctx, booking, name, payout))
		}
	}

	if resp.TotalBookings > 0 {
		resp.AverageBookingValue = grossTotal / float64(resp.TotalBookings)
	}

	for _, entry := range byService {
		resp.ServiceBreakdown = append(resp.ServiceBreakdown, *entry)
	}

	// One chart point per day of the window, zero-filled
	for day := from; !day.After(now); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		resp.ChartData = append(resp.ChartData, response.DailyEarnings{
			Date:     key,
			Earnings: byDay[key],
		})
	}

	return resp, nil
}

func (s *professionalService) GetVerificationStatus(ctx context.Context, userID string) (*response.VerificationStatusResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load verification status")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	return &response.VerificationStatusResponse{Status: user.VerificationStatus}, nil
}

func (s *professionalService) earningsBooking(ctx context.Context, booking *entity.Booking, serviceName string, payout float64) response.EarningsBooking {
	row := response.EarningsBooking{
		ID:            booking.ID.String(),
		ScheduledDate: booking.ScheduledDate.Format("2006-01-02"),
		ScheduledTime: booking.ScheduledTime,
		TotalAmount:   booking.TotalAmount,
		ServiceName:   serviceName,
		Payout:        payout,
		CreatedAt:     booking.CreatedAt,
	}

	if client, err := s.repo.User.FindByID(ctx, booking.ClientID); err == nil && client != nil {
		row.ClientName = client.Name
		row.ClientAvatar = client.Avatar
	}

	if payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID); err == nil && payment != nil {
		row.PaymentStatus = payment.Status
	}

	return row
}
