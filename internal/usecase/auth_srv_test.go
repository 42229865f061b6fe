package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"beauty-go/internal/data/repository"
	"beauty-go/internal/dto/request"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/utils"
)

func testAuthService(repo *repository.Repository) AuthService {
	manager := auth.NewManager("test-secret", time.Hour, "beauty-go")
	return NewAuthService(repo, &utils.Config{}, manager, testLogger())
}

func TestRegisterProfessionalCreatesProfile(t *testing.T) {
	repo, _, _ := testRepo()
	svc := testAuthService(repo)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Bella Pro",
		Email:    "bella@example.com",
		Password: "secret123",
		Role:     "PROFESSIONAL",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.VerificationStatus != "PENDING" {
		t.Fatalf("new professionals start PENDING, got %s", resp.User.VerificationStatus)
	}

	user, err := repo.User.FindByEmail(context.Background(), "bella@example.com")
	if err != nil || user == nil {
		t.Fatalf("user lookup failed: %v", err)
	}
	profile, err := repo.Professional.FindByUserID(context.Background(), user.ID)
	if err != nil || profile == nil {
		t.Fatalf("expected a professional profile to be created")
	}

	// Stored hash, not the password itself
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in clear")
	}
}

func TestRegisterClientHasNoProfile(t *testing.T) {
	repo, _, _ := testRepo()
	svc := testAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "CLIENT",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, _ := repo.User.FindByEmail(context.Background(), "alice@example.com")
	profile, err := repo.Professional.FindByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile lookup error: %v", err)
	}
	if profile != nil {
		t.Fatalf("clients must not get a business profile")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, _, _ := testRepo()
	svc := testAuthService(repo)

	req := &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "CLIENT",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo, _, _ := testRepo()
	svc := testAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "CLIENT",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})
	if err == nil || err.Error() != "invalid email or password" {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	// Unknown email gets the same message
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if err == nil || err.Error() != "invalid email or password" {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo, _, _ := testRepo()
	svc := testAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "CLIENT",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, _ := repo.User.FindByEmail(context.Background(), "alice@example.com")
	repo.User.SetActive(context.Background(), user.ID, false)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err == nil || !strings.Contains(err.Error(), "deactivated") {
		t.Fatalf("expected deactivated error, got %v", err)
	}
}
