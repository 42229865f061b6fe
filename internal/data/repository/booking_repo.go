package repository

import (
	"context"
	"fmt"
	"time"

	"beauty-go/internal/data/entity"
	"beauty-go/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithPayment inserts a booking and its payment in one
	// transaction. Both rows commit or neither does.
	CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error)
	FindByProfessional(ctx context.Context, professionalID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error)
	// UpdateStatusWithPayment sets the booking status and, when payment is
	// not nil, inserts the settlement payment in the same transaction.
	UpdateStatusWithPayment(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, payment *entity.Payment) error

	// Business queries
	FindCompletedByProfessionalBetween(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, client_id, professional_id, service_id, scheduled_date, scheduled_time, status, total_amount, address, city, state, zip_code, notes, created_at, updated_at`

const insertBookingQuery = `
	INSERT INTO bookings (id, client_id, professional_id, service_id, scheduled_date, scheduled_time, status, total_amount, address, city, state, zip_code, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

const insertPaymentQuery = `
	INSERT INTO payments (id, booking_id, user_id, amount, platform_fee, professional_amount, payment_method, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// Settlement only backfills bookings without a payment row; payment rows
// are write-once. payments has a unique index on booking_id, so a racing
// settlement inserts nothing.
const settlePaymentQuery = `
	INSERT INTO payments (id, booking_id, user_id, amount, platform_fee, professional_amount, payment_method, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (booking_id) DO NOTHING
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ProfessionalID,
		&booking.ServiceID,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.Status,
		&booking.TotalAmount,
		&booking.Address,
		&booking.City,
		&booking.State,
		&booking.ZipCode,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CreateWithPayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, insertBookingQuery,
		booking.ID,
		booking.ClientID,
		booking.ProfessionalID,
		booking.ServiceID,
		booking.ScheduledDate,
		booking.ScheduledTime,
		booking.Status,
		booking.TotalAmount,
		booking.Address,
		booking.City,
		booking.State,
		booking.ZipCode,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("client_id", booking.ClientID.String()),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	_, err = tx.Exec(ctx, insertPaymentQuery,
		payment.ID,
		payment.BookingID,
		payment.UserID,
		payment.Amount,
		payment.PlatformFee,
		payment.ProfessionalAmount,
		payment.PaymentMethod,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("insert payment for booking %s: %w", payment.BookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByClient(ctx context.Context, clientID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	return r.findByParty(ctx, "client_id", clientID, status)
}

func (r *bookingRepository) FindByProfessional(ctx context.Context, professionalID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	return r.findByParty(ctx, "professional_id", professionalID, status)
}

// findByParty lists bookings for either side, newest scheduled first. No
// pagination: the web client renders the full history.
func (r *bookingRepository) findByParty(ctx context.Context, column string, userID uuid.UUID, status *entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + column + ` = $1`
	args := []any{userID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}

	query += ` ORDER BY scheduled_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("party", column),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by %s %s: %w", column, userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatusWithPayment(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin status transaction", zap.Error(err))
		return fmt.Errorf("begin status transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	if payment != nil {
		_, err = tx.Exec(ctx, settlePaymentQuery,
			payment.ID,
			payment.BookingID,
			payment.UserID,
			payment.Amount,
			payment.PlatformFee,
			payment.ProfessionalAmount,
			payment.PaymentMethod,
			payment.Status,
			payment.CreatedAt,
			payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert settlement payment",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
			)
			return fmt.Errorf("insert settlement payment for booking %s: %w", bookingID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit status transaction",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("commit status update for booking %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindCompletedByProfessionalBetween(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE professional_id = $1 AND status = $2 AND created_at >= $3 AND created_at <= $4
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, professionalID, entity.BookingStatusCompleted, from, to)
	if err != nil {
		r.log.Error("Failed to find completed bookings",
			zap.Error(err),
			zap.String("professional_id", professionalID.String()),
		)
		return nil, fmt.Errorf("find completed bookings for professional %s: %w", professionalID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by status", zap.Error(err), zap.String("status", string(status)))
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}
	return count, nil
}

func (r *bookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE created_at >= $1 AND created_at <= $2`

	var count int64
	err := r.db.QueryRow(ctx, query, from, to).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by period", zap.Error(err))
		return 0, fmt.Errorf("count bookings between %s and %s: %w", from, to, err)
	}
	return count, nil
}
