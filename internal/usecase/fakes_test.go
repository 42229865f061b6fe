package usecase

import (
	"context"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Slices keep insertion order so list
// assertions are deterministic.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	if offset >= len(f.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[offset:end], nil
}

func (f *fakeUserRepo) FindAdmins(_ context.Context) ([]*entity.User, error) {
	var admins []*entity.User
	for _, u := range f.users {
		if u.Role == entity.RoleAdmin {
			admins = append(admins, u)
		}
	}
	return admins, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = active
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

func (f *fakeUserRepo) UpdateVerificationStatus(_ context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	for _, u := range f.users {
		if u.ID == id {
			u.VerificationStatus = status
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountPendingVerification(_ context.Context) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == entity.RoleProfessional && u.VerificationStatus == entity.VerificationPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, u := range f.users {
		if !u.CreatedAt.Before(from) && u.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeProfessionalRepo struct {
	profiles []*entity.ProfessionalProfile
}

func (f *fakeProfessionalRepo) Create(_ context.Context, profile *entity.ProfessionalProfile) error {
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeProfessionalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProfessionalProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfessionalRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfessionalRepo) UpdateRatingStats(_ context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	for _, p := range f.profiles {
		if p.ID == id {
			p.AverageRating = averageRating
			p.TotalReviews = totalReviews
			return nil
		}
	}
	return fmt.Errorf("profile %s not found", id)
}

type fakeServiceRepo struct {
	services []*entity.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	f.services = append(f.services, service)
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindActiveByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id && s.IsActive {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindByProfessionalID(_ context.Context, professionalID uuid.UUID) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		if s.ProfessionalID == professionalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, service *entity.Service) error {
	for i, s := range f.services {
		if s.ID == service.ID {
			f.services[i] = service
			return nil
		}
	}
	return fmt.Errorf("service %s not found", service.ID)
}

func (f *fakeServiceRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, s := range f.services {
		if s.ID == id {
			s.IsActive = false
			return nil
		}
	}
	return fmt.Errorf("service %s not found", id)
}

func (f *fakeServiceRepo) Search(_ context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		if !s.IsActive {
			continue
		}
		if filter.Category != "" && string(s.Category) != filter.Category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) SumPlatformFeeCompleted(_ context.Context) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.Status == entity.PaymentStatusCompleted {
			sum += p.PlatformFee
		}
	}
	return sum, nil
}

func (f *fakePaymentRepo) SumPlatformFeeCompletedBetween(_ context.Context, from, to time.Time) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.Status == entity.PaymentStatusCompleted && !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			sum += p.PlatformFee
		}
	}
	return sum, nil
}

func (f *fakePaymentRepo) TopProfessionalTotals(_ context.Context, limit int) ([]*repository.ProfessionalTotal, error) {
	return nil, nil
}

// insertIfAbsent mirrors the SQL ON CONFLICT (booking_id) DO NOTHING
// behavior.
func (f *fakePaymentRepo) insertIfAbsent(payment *entity.Payment) {
	for _, p := range f.payments {
		if p.BookingID == payment.BookingID {
			return
		}
	}
	f.payments = append(f.payments, payment)
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
	payments *fakePaymentRepo
}

func (f *fakeBookingRepo) CreateWithPayment(_ context.Context, booking *entity.Booking, payment *entity.Payment) error {
	f.bookings = append(f.bookings, booking)
	f.payments.payments = append(f.payments.payments, payment)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByClient(_ context.Context, clientID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	return f.filter(func(b *entity.Booking) bool { return b.ClientID == clientID }, status), nil
}

func (f *fakeBookingRepo) FindByProfessional(_ context.Context, professionalID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	return f.filter(func(b *entity.Booking) bool { return b.ProfessionalID == professionalID }, status), nil
}

func (f *fakeBookingRepo) filter(match func(*entity.Booking) bool, status *entity.BookingStatus) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if !match(b) {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (f *fakeBookingRepo) UpdateStatusWithPayment(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus, payment *entity.Payment) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
			if payment != nil {
				f.payments.insertIfAbsent(payment)
			}
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", bookingID)
}

func (f *fakeBookingRepo) FindCompletedByProfessionalBetween(_ context.Context, professionalID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.Status == entity.BookingStatusCompleted &&
			!b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status entity.BookingStatus) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if !b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByProfessional(_ context.Context, professionalID uuid.UUID, limit int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.ProfessionalID == professionalID {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) StatsByProfessional(_ context.Context, professionalID uuid.UUID) (float64, int64, error) {
	var sum float64
	var count int64
	for _, r := range f.reviews {
		if r.ProfessionalID == professionalID {
			sum += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

type fakeFavoriteRepo struct {
	favorites []*entity.Favorite
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *entity.Favorite) error {
	f.favorites = append(f.favorites, favorite)
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, userID, professionalID uuid.UUID) error {
	for i, fav := range f.favorites {
		if fav.UserID == userID && fav.ProfessionalID == professionalID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeFavoriteRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var out []*entity.Favorite
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Exists(_ context.Context, userID, professionalID uuid.UUID) (bool, error) {
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.ProfessionalID == professionalID {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(_ context.Context, notifications []*entity.Notification) error {
	f.notifications = append(f.notifications, notifications...)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) FindByType(_ context.Context, notifType entity.NotificationType, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.Type == notifType {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

func (f *fakeNotificationRepo) forUser(userID uuid.UUID) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// testRepo bundles the fakes behind the aggregate the services expect.
func testRepo() (*repository.Repository, *fakePaymentRepo, *fakeNotificationRepo) {
	payments := &fakePaymentRepo{}
	notifications := &fakeNotificationRepo{}
	repo := &repository.Repository{
		User:         &fakeUserRepo{},
		Professional: &fakeProfessionalRepo{},
		Service:      &fakeServiceRepo{},
		Booking:      &fakeBookingRepo{payments: payments},
		Payment:      payments,
		Review:       &fakeReviewRepo{},
		Favorite:     &fakeFavoriteRepo{},
		Notification: notifications,
	}
	return repo, payments, notifications
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// seedMarketplace creates a client, a professional with profile, and one
// active service priced at price.
func seedMarketplace(repo *repository.Repository, price float64) (client, professional *entity.User, service *entity.Service) {
	ctx := context.Background()
	now := time.Now()

	client = &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     "Alice Client",
		Email:    "alice@example.com",
		Role:     entity.RoleClient,
		IsActive: true,
	}
	professional = &entity.User{
		Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:               "Bella Pro",
		Email:              "bella@example.com",
		Role:               entity.RoleProfessional,
		VerificationStatus: entity.VerificationApproved,
		IsActive:           true,
	}
	repo.User.Create(ctx, client)
	repo.User.Create(ctx, professional)

	profile := &entity.ProfessionalProfile{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:       professional.ID,
		BusinessName: "Bella Beauty",
	}
	repo.Professional.Create(ctx, profile)

	service = &entity.Service{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ProfessionalID: profile.ID,
		Name:           "Haircut",
		Description:    "A haircut",
		Category:       entity.CategoryHairStyling,
		Price:          price,
		Duration:       60,
		IsActive:       true,
	}
	repo.Service.Create(ctx, service)

	return client, professional, service
}
