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

func seedAdmins(repo *fakeUserRepo, n int) []*entity.User {
	now := time.Now()
	var admins []*entity.User
	for i := 0; i < n; i++ {
		admin := &entity.User{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:     "Admin",
			Role:     entity.RoleAdmin,
			IsActive: true,
		}
		repo.users = append(repo.users, admin)
		admins = append(admins, admin)
	}
	return admins
}

func TestSubmitContactFansOutToAdmins(t *testing.T) {
	repo, _, notifications := testRepo()
	admins := seedAdmins(repo.User.(*fakeUserRepo), 2)
	svc := NewNotificationService(repo, testLogger())

	err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Question",
		Message: "How do payouts work?",
	})
	if err != nil {
		t.Fatalf("SubmitContact error: %v", err)
	}

	if len(notifications.notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications.notifications))
	}
	for _, admin := range admins {
		got := notifications.forUser(admin.ID)
		if len(got) != 1 {
			t.Fatalf("expected 1 notification for admin %s, got %d", admin.ID, len(got))
		}
		if !strings.Contains(got[0].Title, "Question") {
			t.Fatalf("expected subject in title, got %q", got[0].Title)
		}
	}
}

func TestSubmitContactNoAdmins(t *testing.T) {
	repo, _, notifications := testRepo()
	svc := NewNotificationService(repo, testLogger())

	err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Anyone there?",
	})
	if err != nil {
		t.Fatalf("SubmitContact error: %v", err)
	}
	if len(notifications.notifications) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifications.notifications))
	}
}

func TestSubmitContactValidation(t *testing.T) {
	repo, _, _ := testRepo()
	svc := NewNotificationService(repo, testLogger())

	err := svc.SubmitContact(context.Background(), &request.ContactRequest{
		Name:  "Visitor",
		Email: "not-an-email",
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo, _, notifications := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	svc := NewNotificationService(repo, testLogger())

	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     client.ID,
		Title:      "Hi",
		Message:    "Welcome",
		Type:       entity.NotificationGeneral,
	}
	repo.Notification.Create(context.Background(), notification)

	// Someone else cannot mark it
	if err := svc.MarkRead(context.Background(), uuid.New().String(), notification.ID.String()); err == nil {
		t.Fatalf("expected error marking another user's notification")
	}
	if notifications.notifications[0].IsRead {
		t.Fatalf("notification should still be unread")
	}

	if err := svc.MarkRead(context.Background(), client.ID.String(), notification.ID.String()); err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if !notifications.notifications[0].IsRead {
		t.Fatalf("notification should be read")
	}
}
