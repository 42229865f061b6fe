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

type CatalogService interface {
	// Public catalog
	ListServices(ctx context.Context, category, search string, page *request.PaginatedRequest) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, serviceID string) (*response.ServiceDetailResponse, error)

	// Professional management
	CreateService(ctx context.Context, userID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, userID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, userID, serviceID string) error
	GetMyServices(ctx context.Context, userID string) ([]response.ServiceResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context, category, search string, page *request.PaginatedRequest) ([]response.ServiceResponse, error) {
	filter := repository.ServiceFilter{
		Category: category,
		Search:   search,
		// The public catalog only shows approved professionals.
		VerifiedOnly: true,
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	}

	services, err := s.repo.Service.Search(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search services", zap.Error(err), zap.String("category", category))
		return nil, fmt.Errorf("failed to list services")
	}

	responses := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		responses = append(responses, s.expandService(ctx, service))
	}

	return responses, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*response.ServiceDetailResponse, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.repo.Service.FindActiveByID(ctx, serviceUUID)
	if err != nil {
		s.log.Error("Failed to load service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to load service")
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	detail := &response.ServiceDetailResponse{
		ServiceResponse: s.expandService(ctx, service),
		Reviews:         []response.ReviewResponse{},
	}

	// Latest reviews for the owning professional
	if profile, err := s.repo.Professional.FindByID(ctx, service.ProfessionalID); err == nil && profile != nil {
		reviews, err := s.repo.Review.FindByProfessional(ctx, profile.UserID, 10)
		if err == nil {
			for _, review := range reviews {
				client, _ := s.repo.User.FindByID(ctx, review.ClientID)
				detail.Reviews = append(detail.Reviews, response.ReviewToResponse(review, client))
			}
		}
	}

	return detail, nil
}

func (s *catalogService) CreateService(ctx context.Context, userID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.profileForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProfessionalID: profile.ID,
		Name:           req.Name,
		Description:    req.Description,
		Category:       entity.ServiceCategory(req.Category),
		Price:          req.Price,
		Duration:       req.Duration,
		Images:         req.Images,
		IsActive:       true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create service")
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("user_id", userID),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, userID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service, _, err := s.ownedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	// Partial update: only the fields the request carries change.
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = entity.ServiceCategory(*req.Category)
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Images != nil {
		service.Images = req.Images
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service")
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

// DeleteService deactivates rather than deletes; existing bookings keep
// their reference.
func (s *catalogService) DeleteService(ctx context.Context, userID, serviceID string) error {
	service, _, err := s.ownedService(ctx, userID, serviceID)
	if err != nil {
		return err
	}

	if err := s.repo.Service.Deactivate(ctx, service.ID); err != nil {
		s.log.Error("Failed to deactivate service", zap.Error(err), zap.String("service_id", serviceID))
		return fmt.Errorf("failed to delete service")
	}

	s.log.Info("Service deactivated", zap.String("service_id", serviceID), zap.String("user_id", userID))
	return nil
}

func (s *catalogService) GetMyServices(ctx context.Context, userID string) ([]response.ServiceResponse, error) {
	profile, err := s.profileForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.Service.FindByProfessionalID(ctx, profile.ID)
	if err != nil {
		s.log.Error("Failed to list own services", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list services")
	}

	responses := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		responses = append(responses, response.ServiceToResponse(service))
	}

	return responses, nil
}

func (s *catalogService) profileForUser(ctx context.Context, userID string) (*entity.ProfessionalProfile, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	profile, err := s.repo.Professional.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load professional profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load professional profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("professional profile not found")
	}

	return profile, nil
}

// ownedService loads the service and verifies it belongs to the caller's
// business profile.
func (s *catalogService) ownedService(ctx context.Context, userID, serviceID string) (*entity.Service, *entity.ProfessionalProfile, error) {
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	profile, err := s.profileForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	service, err := s.repo.Service.FindByID(ctx, serviceUUID)
	if err != nil {
		s.log.Error("Failed to load service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, nil, fmt.Errorf("failed to load service")
	}
	if service == nil {
		return nil, nil, fmt.Errorf("service %s not found", serviceID)
	}
	if service.ProfessionalID != profile.ID {
		return nil, nil, fmt.Errorf("forbidden: service belongs to another professional")
	}

	return service, profile, nil
}

func (s *catalogService) expandService(ctx context.Context, service *entity.Service) response.ServiceResponse {
	resp := response.ServiceToResponse(service)

	if profile, err := s.repo.Professional.FindByID(ctx, service.ProfessionalID); err == nil && profile != nil {
		if user, err := s.repo.User.FindByID(ctx, profile.UserID); err == nil {
			resp.Professional = response.ProfessionalToSummary(profile, user)
		}
	}

	return resp
}
