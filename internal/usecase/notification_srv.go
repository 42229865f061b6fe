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

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID string, limit int) ([]response.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	// SubmitContact fans a contact-form message out to every admin as an
	// in-app notification.
	SubmitContact(ctx context.Context, req *request.ContactRequest) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, limit int) ([]response.NotificationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if limit <= 0 {
		limit = 50
	}

	notifications, err := s.repo.Notification.FindByUserID(ctx, userUUID, limit)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list notifications")
	}

	responses := make([]response.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, response.NotificationToResponse(notification))
	}

	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	notificationUUID, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	// Scoped to the owner; marking someone else's notification reports not
	// found rather than forbidden.
	if err := s.repo.Notification.MarkRead(ctx, notificationUUID, userUUID); err != nil {
		s.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", notificationID),
			zap.String("user_id", userID),
		)
		return err
	}

	return nil
}

func (s *notificationService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	admins, err := s.repo.User.FindAdmins(ctx)
	if err != nil {
		s.log.Error("Failed to load admins", zap.Error(err))
		return fmt.Errorf("failed to submit message")
	}
	if len(admins) == 0 {
		s.log.Warn("Contact message received but no admins exist",
			zap.String("email", req.Email))
		return nil
	}

	data := fmt.Sprintf(`{"name":%q,"email":%q}`, req.Name, req.Email)
	now := time.Now()
	notifications := make([]*entity.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, &entity.Notification{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:  admin.ID,
			Title:   fmt.Sprintf("Contact: %s", req.Subject),
			Message: req.Message,
			Type:    entity.NotificationGeneral,
			Data:    &data,
		})
	}

	if err := s.repo.Notification.CreateBatch(ctx, notifications); err != nil {
		s.log.Error("Failed to fan out contact message", zap.Error(err))
		return fmt.Errorf("failed to submit message")
	}

	s.log.Info("Contact message delivered",
		zap.String("email", req.Email),
		zap.Int("admins", len(admins)),
	)

	return nil
}
