package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/request"
	"beauty-go/internal/dto/response"
	"beauty-go/pkg/cache"
	"beauty-go/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 60 * time.Second
)

type AdminService interface {
	// GetStats returns the back-office dashboard. Cached briefly; the
	// dashboard polls and the aggregates are expensive.
	GetStats(ctx context.Context) (*response.AdminStatsResponse, error)
	GetUsers(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserStatus(ctx context.Context, targetUserID string, req *request.UpdateUserStatusRequest) error
	// ReviewVerification approves or rejects a professional's verification
	// and notifies them of the outcome.
	ReviewVerification(ctx context.Context, req *request.VerificationReviewRequest) error
}

type adminService struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewAdminService(repo *repository.Repository, statsCache cache.Cache, log *zap.Logger) AdminService {
	return &adminService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, statsCacheKey); err == nil && ok {
			var stats response.AdminStatsResponse
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
			// Corrupt entry; fall through and recompute
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, encoded, statsCacheTTL); err != nil {
				s.log.Warn("Failed to cache stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *adminService) computeStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	var overview response.AdminOverview
	var err error

	if overview.TotalUsers, err = s.repo.User.Count(ctx); err != nil {
		return nil, s.statsErr("count users", err)
	}
	if overview.TotalProfessionals, err = s.repo.User.CountByRole(ctx, entity.RoleProfessional); err != nil {
		return nil, s.statsErr("count professionals", err)
	}
	if overview.TotalClients, err = s.repo.User.CountByRole(ctx, entity.RoleClient); err != nil {
		return nil, s.statsErr("count clients", err)
	}
	if overview.TotalBookings, err = s.repo.Booking.Count(ctx); err != nil {
		return nil, s.statsErr("count bookings", err)
	}
	if overview.PendingBookings, err = s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending); err != nil {
		return nil, s.statsErr("count pending bookings", err)
	}
	if overview.CompletedBookings, err = s.repo.Booking.CountByStatus(ctx, entity.BookingStatusCompleted); err != nil {
		return nil, s.statsErr("count completed bookings", err)
	}
	if overview.TotalServices, err = s.repo.Service.Count(ctx); err != nil {
		return nil, s.statsErr("count services", err)
	}
	if overview.PendingVerifications, err = s.repo.User.CountPendingVerification(ctx); err != nil {
		return nil, s.statsErr("count pending verifications", err)
	}
	// Platform revenue = collected fees, not gross booking volume
	if overview.TotalRevenue, err = s.repo.Payment.SumPlatformFeeCompleted(ctx); err != nil {
		return nil, s.statsErr("sum platform fees", err)
	}

	stats := &response.AdminStatsResponse{
		Overview:         overview,
		MonthlyStats:     []response.MonthlyStat{},
		TopProfessionals: []response.TopProfessional{},
	}

	// Last six calendar months, oldest first
	now := time.Now()
	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		stat := response.MonthlyStat{Month: monthStart.Format("2006-01")}
		if stat.Bookings, err = s.repo.Booking.CountCreatedBetween(ctx, monthStart, monthEnd); err != nil {
			return nil, s.statsErr("count monthly bookings", err)
		}
		if stat.Revenue, err = s.repo.Payment.SumPlatformFeeCompletedBetween(ctx, monthStart, monthEnd); err != nil {
			return nil, s.statsErr("sum monthly fees", err)
		}
		if stat.NewUsers, err = s.repo.User.CountCreatedBetween(ctx, monthStart, monthEnd); err != nil {
			return nil, s.statsErr("count monthly users", err)
		}
		stats.MonthlyStats = append(stats.MonthlyStats, stat)
	}

	totals, err := s.repo.Payment.TopProfessionalTotals(ctx, 5)
	if err != nil {
		return nil, s.statsErr("top professionals", err)
	}
	for _, total := range totals {
		top := response.TopProfessional{
			UserID:        total.UserID.String(),
			TotalEarnings: total.TotalEarnings,
			TotalBookings: total.TotalBookings,
		}

		if user, err := s.repo.User.FindByID(ctx, total.UserID); err == nil && user != nil {
			top.Name = user.Name
			top.IsVerified = user.VerificationStatus == entity.VerificationApproved
		}
		if profile, err := s.repo.Professional.FindByUserID(ctx, total.UserID); err == nil && profile != nil {
			top.BusinessName = profile.BusinessName
			top.AverageRating = profile.AverageRating
		}

		stats.TopProfessionals = append(stats.TopProfessionals, top)
	}

	return stats, nil
}

func (s *adminService) GetUsers(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	responses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, targetUserID string, req *request.UpdateUserStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	targetUUID, err := uuid.Parse(targetUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", targetUserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, targetUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", targetUserID))
		return fmt.Errorf("failed to update user")
	}
	if user == nil {
		return fmt.Errorf("user %s not found", targetUserID)
	}

	if err := s.repo.User.SetActive(ctx, targetUUID, *req.IsActive); err != nil {
		s.log.Error("Failed to set user active flag", zap.Error(err), zap.String("user_id", targetUserID))
		return fmt.Errorf("failed to update user")
	}

	s.log.Info("User status updated",
		zap.String("user_id", targetUserID),
		zap.Bool("is_active", *req.IsActive),
	)

	return nil
}

func (s *adminService) ReviewVerification(ctx context.Context, req *request.VerificationReviewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verification review validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	targetUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, targetUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", req.UserID))
		return fmt.Errorf("failed to review verification")
	}
	if user == nil {
		return fmt.Errorf("user %s not found", req.UserID)
	}
	if user.Role != entity.RoleProfessional {
		return fmt.Errorf("invalid target: user %s is not a professional", req.UserID)
	}

	status := entity.VerificationStatus(req.Decision)
	if err := s.repo.User.UpdateVerificationStatus(ctx, targetUUID, status); err != nil {
		s.log.Error("Failed to update verification status",
			zap.Error(err), zap.String("user_id", req.UserID))
		return fmt.Errorf("failed to review verification")
	}

	s.log.Info("Verification reviewed",
		zap.String("user_id", req.UserID),
		zap.String("decision", req.Decision),
	)

	// Tell the professional. Best-effort.
	message := "Your verification has been approved. Your services are now visible to clients."
	if status == entity.VerificationRejected {
		message = "Your verification was rejected."
		if req.Reason != "" {
			message = fmt.Sprintf("Your verification was rejected: %s", req.Reason)
		}
	}

	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  targetUUID,
		Title:   "Verification update",
		Message: message,
		Type:    entity.NotificationVerificationUpdate,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to notify verification outcome",
			zap.Error(err), zap.String("user_id", req.UserID))
	}

	return nil
}

func (s *adminService) statsErr(op string, err error) error {
	s.log.Error("Failed to compute stats", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("failed to compute stats")
}
