package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/dto/request"

	"github.com/google/uuid"
)

func TestCreateServiceRequiresProfile(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	svc := NewCatalogService(repo, testLogger())

	// Clients have no business profile
	_, err := svc.CreateService(context.Background(), client.ID.String(), &request.CreateServiceRequest{
		Name:        "Manicure",
		Description: "Nails",
		Category:    "MANICURE",
		Price:       35,
		Duration:    45,
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected profile not found error, got %v", err)
	}
}

func TestUpdateServiceOwnership(t *testing.T) {
	repo, _, _ := testRepo()
	_, professional, service := seedMarketplace(repo, 100)
	svc := NewCatalogService(repo, testLogger())

	// A second professional with their own profile
	now := time.Now()
	other := &entity.User{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: "Carla Pro", Email: "carla@example.com",
		Role: entity.RoleProfessional, IsActive: true,
	}
	repo.User.Create(context.Background(), other)
	repo.Professional.Create(context.Background(), &entity.ProfessionalProfile{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: other.ID, BusinessName: "Carla Beauty",
	})

	newPrice := 120.0
	_, err := svc.UpdateService(context.Background(), other.ID.String(), service.ID.String(),
		&request.UpdateServiceRequest{Price: &newPrice})
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	// The owner can update, and only the sent fields change
	updated, err := svc.UpdateService(context.Background(), professional.ID.String(), service.ID.String(),
		&request.UpdateServiceRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateService error: %v", err)
	}
	if updated.Price != 120 {
		t.Fatalf("expected price 120, got %v", updated.Price)
	}
	if updated.Name != "Haircut" {
		t.Fatalf("name should be untouched, got %q", updated.Name)
	}
}

func TestDeleteServiceDeactivates(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	catalogSvc := NewCatalogService(repo, testLogger())
	bookingSvc := NewBookingService(repo, testLogger())

	if err := catalogSvc.DeleteService(context.Background(), professional.ID.String(), service.ID.String()); err != nil {
		t.Fatalf("DeleteService error: %v", err)
	}

	// Gone from the catalog
	if _, err := catalogSvc.GetService(context.Background(), service.ID.String()); err == nil {
		t.Fatalf("expected deactivated service to be hidden")
	}

	// But not bookable is expected too
	_, err := bookingSvc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found for deactivated service, got %v", err)
	}

	// The row still exists for history
	row, err := repo.Service.FindByID(context.Background(), service.ID)
	if err != nil || row == nil {
		t.Fatalf("service row should survive deactivation")
	}
	if row.IsActive {
		t.Fatalf("service should be inactive")
	}
}

func TestGetMyServicesIncludesInactive(t *testing.T) {
	repo, _, _ := testRepo()
	_, professional, service := seedMarketplace(repo, 100)
	svc := NewCatalogService(repo, testLogger())

	repo.Service.Deactivate(context.Background(), service.ID)

	mine, err := svc.GetMyServices(context.Background(), professional.ID.String())
	if err != nil {
		t.Fatalf("GetMyServices error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 service, got %d", len(mine))
	}
	if mine[0].IsActive {
		t.Fatalf("expected inactive service in own list")
	}
}
