package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/dto/request"
)

// fakeCache is an in-memory cache.Cache without TTL expiry.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := f.entries[key]
	return value, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func TestGetStatsComputesOverview(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	bookingSvc := NewBookingService(repo, testLogger())
	adminSvc := NewAdminService(repo, nil, testLogger())

	// One booking through the normal flow (its cash payment stays pending)
	// and one legacy booking whose settlement backfills a completed payment.
	bookThenComplete(t, bookingSvc, client, professional, service)
	legacy := seedLegacyBooking(repo, client, professional, service, 100)
	if _, err := bookingSvc.UpdateBookingStatus(context.Background(), professional.ID.String(), legacy.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "COMPLETED"}); err != nil {
		t.Fatalf("UpdateBookingStatus error: %v", err)
	}

	stats, err := adminSvc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}

	if stats.Overview.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.Overview.TotalUsers)
	}
	if stats.Overview.TotalProfessionals != 1 || stats.Overview.TotalClients != 1 {
		t.Fatalf("unexpected role counts: %d professionals, %d clients",
			stats.Overview.TotalProfessionals, stats.Overview.TotalClients)
	}
	if stats.Overview.CompletedBookings != 2 {
		t.Fatalf("expected 2 completed bookings, got %d", stats.Overview.CompletedBookings)
	}
	// Revenue counts settled payments only: the backfilled payment's 20 fee.
	// The pending cash payment contributes nothing.
	if stats.Overview.TotalRevenue != 20 {
		t.Fatalf("expected revenue 20, got %v", stats.Overview.TotalRevenue)
	}
	if len(stats.MonthlyStats) != 6 {
		t.Fatalf("expected 6 monthly buckets, got %d", len(stats.MonthlyStats))
	}
}

func TestGetStatsServedFromCache(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	bookingSvc := NewBookingService(repo, testLogger())
	statsCache := newFakeCache()
	adminSvc := NewAdminService(repo, statsCache, testLogger())

	first, err := adminSvc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if len(statsCache.entries) != 1 {
		t.Fatalf("expected stats to be cached")
	}

	// New completed booking is invisible until the cache entry expires
	bookThenComplete(t, bookingSvc, client, professional, service)

	second, err := adminSvc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if second.Overview.TotalBookings != first.Overview.TotalBookings {
		t.Fatalf("expected cached stats, got recomputed ones")
	}
}

func TestReviewVerificationApproves(t *testing.T) {
	repo, _, notifications := testRepo()
	_, professional, _ := seedMarketplace(repo, 100)
	professional.VerificationStatus = entity.VerificationPending
	adminSvc := NewAdminService(repo, nil, testLogger())

	err := adminSvc.ReviewVerification(context.Background(), &request.VerificationReviewRequest{
		UserID:   professional.ID.String(),
		Decision: "APPROVED",
	})
	if err != nil {
		t.Fatalf("ReviewVerification error: %v", err)
	}

	if professional.VerificationStatus != entity.VerificationApproved {
		t.Fatalf("expected APPROVED, got %s", professional.VerificationStatus)
	}

	got := notifications.forUser(professional.ID)
	if len(got) != 1 || got[0].Type != entity.NotificationVerificationUpdate {
		t.Fatalf("expected a VERIFICATION_UPDATE notification, got %v", got)
	}
}

func TestReviewVerificationRejectsNonProfessional(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	adminSvc := NewAdminService(repo, nil, testLogger())

	err := adminSvc.ReviewVerification(context.Background(), &request.VerificationReviewRequest{
		UserID:   client.ID.String(),
		Decision: "APPROVED",
	})
	if err == nil || !strings.Contains(err.Error(), "not a professional") {
		t.Fatalf("expected non-professional rejection, got %v", err)
	}
}

func TestUpdateUserStatusDeactivates(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	adminSvc := NewAdminService(repo, nil, testLogger())

	inactive := false
	err := adminSvc.UpdateUserStatus(context.Background(), client.ID.String(),
		&request.UpdateUserStatusRequest{IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateUserStatus error: %v", err)
	}

	if client.IsActive {
		t.Fatalf("expected user to be deactivated")
	}
}
