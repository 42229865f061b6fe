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

type ReviewService interface {
	// CreateReview lets the client review a completed booking once. The
	// professional's rolling average is refreshed afterwards.
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetProfessionalReviews(ctx context.Context, professionalUserID string, limit int) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingUUID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	if booking.ClientID != userUUID {
		return nil, fmt.Errorf("forbidden: booking belongs to another user")
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("invalid state: only completed bookings can be reviewed")
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to create review")
	}
	if existing != nil {
		return nil, fmt.Errorf("booking already reviewed")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:      bookingUUID,
		ClientID:       userUUID,
		ProfessionalID: booking.ProfessionalID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to create review")
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Int("rating", req.Rating),
	)

	// Refresh the professional's cached rating. Best-effort: the review
	// row exists either way and the stats catch up on the next review.
	s.refreshRatingStats(ctx, booking.ProfessionalID)

	client, _ := s.repo.User.FindByID(ctx, userUUID)
	resp := response.ReviewToResponse(review, client)
	return &resp, nil
}

func (s *reviewService) GetProfessionalReviews(ctx context.Context, professionalUserID string, limit int) ([]response.ReviewResponse, error) {
	professionalUUID, err := uuid.Parse(professionalUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid professional ID format %s: %w", professionalUserID, err)
	}

	if limit <= 0 {
		limit = 20
	}

	reviews, err := s.repo.Review.FindByProfessional(ctx, professionalUUID, limit)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("professional_id", professionalUserID))
		return nil, fmt.Errorf("failed to list reviews")
	}

	responses := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		client, _ := s.repo.User.FindByID(ctx, review.ClientID)
		responses = append(responses, response.ReviewToResponse(review, client))
	}

	return responses, nil
}

func (s *reviewService) refreshRatingStats(ctx context.Context, professionalUserID uuid.UUID) {
	avgRating, count, err := s.repo.Review.StatsByProfessional(ctx, professionalUserID)
	if err != nil {
		s.log.Warn("Failed to compute rating stats", zap.Error(err),
			zap.String("professional_id", professionalUserID.String()))
		return
	}

	profile, err := s.repo.Professional.FindByUserID(ctx, professionalUserID)
	if err != nil || profile == nil {
		s.log.Warn("Failed to load profile for rating refresh", zap.Error(err),
			zap.String("professional_id", professionalUserID.String()))
		return
	}

	if err := s.repo.Professional.UpdateRatingStats(ctx, profile.ID, avgRating, int(count)); err != nil {
		s.log.Warn("Failed to update rating stats", zap.Error(err),
			zap.String("profile_id", profile.ID.String()))
	}
}
