package usecase

import (
	"context"
	"strings"
	"testing"

	"beauty-go/internal/dto/request"
)

func TestGetEarningsSumsPayouts(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	bookingSvc := NewBookingService(repo, testLogger())
	proSvc := NewProfessionalService(repo, testLogger())

	// Two completed bookings, one still confirmed
	bookThenComplete(t, bookingSvc, client, professional, service)
	bookThenComplete(t, bookingSvc, client, professional, service)
	if _, err := bookingSvc.CreateBooking(context.Background(), client.ID.String(), validBookingRequest(service.ID)); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	earnings, err := proSvc.GetEarnings(context.Background(), professional.ID.String(), "month")
	if err != nil {
		t.Fatalf("GetEarnings error: %v", err)
	}

	if earnings.TotalBookings != 2 {
		t.Fatalf("only completed bookings count, got %d", earnings.TotalBookings)
	}
	// 80% of 2 x 100
	if earnings.TotalEarnings != 160 {
		t.Fatalf("expected earnings 160, got %v", earnings.TotalEarnings)
	}
	if earnings.AverageBookingValue != 100 {
		t.Fatalf("expected average 100, got %v", earnings.AverageBookingValue)
	}
	if len(earnings.ServiceBreakdown) != 1 || earnings.ServiceBreakdown[0].Count != 2 {
		t.Fatalf("unexpected breakdown: %v", earnings.ServiceBreakdown)
	}
	if len(earnings.RecentBookings) != 2 {
		t.Fatalf("expected 2 recent bookings, got %d", len(earnings.RecentBookings))
	}
	if earnings.RecentBookings[0].Payout != 80 {
		t.Fatalf("expected payout 80, got %v", earnings.RecentBookings[0].Payout)
	}
}

func TestGetEarningsRejectsUnknownPeriod(t *testing.T) {
	repo, _, _ := testRepo()
	_, professional, _ := seedMarketplace(repo, 100)
	proSvc := NewProfessionalService(repo, testLogger())

	_, err := proSvc.GetEarnings(context.Background(), professional.ID.String(), "decade")
	if err == nil || !strings.Contains(err.Error(), "invalid period") {
		t.Fatalf("expected invalid period error, got %v", err)
	}
}

func TestGetPublicProfile(t *testing.T) {
	repo, _, _ := testRepo()
	client, professional, service := seedMarketplace(repo, 100)
	bookingSvc := NewBookingService(repo, testLogger())
	reviewSvc := NewReviewService(repo, testLogger())
	proSvc := NewProfessionalService(repo, testLogger())

	bookingID := bookThenComplete(t, bookingSvc, client, professional, service)
	if _, err := reviewSvc.CreateReview(context.Background(), client.ID.String(), &request.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    5,
	}); err != nil {
		t.Fatalf("CreateReview error: %v", err)
	}

	profile, err := proSvc.GetPublicProfile(context.Background(), professional.ID.String())
	if err != nil {
		t.Fatalf("GetPublicProfile error: %v", err)
	}

	if profile.BusinessName != "Bella Beauty" {
		t.Fatalf("expected business name, got %q", profile.BusinessName)
	}
	if len(profile.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(profile.Services))
	}
	if len(profile.Reviews) != 1 || profile.Reviews[0].Rating != 5 {
		t.Fatalf("expected the review on the profile, got %v", profile.Reviews)
	}
	if profile.AverageRating != 5 || profile.TotalReviews != 1 {
		t.Fatalf("expected refreshed rating stats, got %v/%d", profile.AverageRating, profile.TotalReviews)
	}
}

func TestGetPublicProfileNotAProfessional(t *testing.T) {
	repo, _, _ := testRepo()
	client, _, _ := seedMarketplace(repo, 100)
	proSvc := NewProfessionalService(repo, testLogger())

	_, err := proSvc.GetPublicProfile(context.Background(), client.ID.String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}
