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

// ProfessionalTotal aggregates completed earnings per professional for the
// admin leaderboard.
type ProfessionalTotal struct {
	UserID        uuid.UUID
	TotalEarnings float64
	TotalBookings int64
}

type PaymentRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)

	// Platform revenue = sum of platform fees over completed payments.
	SumPlatformFeeCompleted(ctx context.Context) (float64, error)
	SumPlatformFeeCompletedBetween(ctx context.Context, from, to time.Time) (float64, error)
	TopProfessionalTotals(ctx context.Context, limit int) ([]*ProfessionalTotal, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, user_id, amount, platform_fee, professional_amount, payment_method, status, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.UserID,
		&payment.Amount,
		&payment.PlatformFee,
		&payment.ProfessionalAmount,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at DESC LIMIT 1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) SumPlatformFeeCompleted(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(platform_fee), 0) FROM payments WHERE status = $1`

	var total float64
	err := r.db.QueryRow(ctx, query, entity.PaymentStatusCompleted).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum platform fees", zap.Error(err))
		return 0, fmt.Errorf("sum platform fees: %w", err)
	}
	return total, nil
}

func (r *paymentRepository) SumPlatformFeeCompletedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(platform_fee), 0)
		FROM payments
		WHERE status = $1 AND created_at >= $2 AND created_at <= $3
	`

	var total float64
	err := r.db.QueryRow(ctx, query, entity.PaymentStatusCompleted, from, to).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum platform fees by period", zap.Error(err))
		return 0, fmt.Errorf("sum platform fees between %s and %s: %w", from, to, err)
	}
	return total, nil
}

func (r *paymentRepository) TopProfessionalTotals(ctx context.Context, limit int) ([]*ProfessionalTotal, error) {
	query := `
		SELECT b.professional_id, COALESCE(SUM(p.professional_amount), 0), COUNT(b.id)
		FROM bookings b
		LEFT JOIN payments p ON p.booking_id = b.id
		WHERE b.status = $1
		GROUP BY b.professional_id
		ORDER BY COALESCE(SUM(p.professional_amount), 0) DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, entity.BookingStatusCompleted, limit)
	if err != nil {
		r.log.Error("Failed to query top professional totals", zap.Error(err))
		return nil, fmt.Errorf("query top professional totals: %w", err)
	}
	defer rows.Close()

	var totals []*ProfessionalTotal
	for rows.Next() {
		var total ProfessionalTotal
		if err := rows.Scan(&total.UserID, &total.TotalEarnings, &total.TotalBookings); err != nil {
			r.log.Error("Failed to scan professional total row", zap.Error(err))
			return nil, fmt.Errorf("scan professional total row: %w", err)
		}
		totals = append(totals, &total)
	}

	return totals, nil
}
