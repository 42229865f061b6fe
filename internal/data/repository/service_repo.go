package repository

import (
	"context"
	"fmt"

	"beauty-go/internal/data/entity"
	"beauty-go/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ServiceFilter narrows the public catalog listing.
type ServiceFilter struct {
	Category     string
	Search       string
	VerifiedOnly bool
	Limit        int
	Offset       int
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)
	Count(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, professional_id, name, description, category, price, duration, images, is_active, created_at, updated_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var service entity.Service
	err := row.Scan(
		&service.ID,
		&service.ProfessionalID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.Price,
		&service.Duration,
		&service.Images,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, professional_id, name, description, category, price, duration, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.ProfessionalID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Duration,
		service.Images,
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("professional_id", service.ProfessionalID.String()),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func (r *serviceRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND is_active = TRUE`

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find active service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func (r *serviceRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE professional_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		r.log.Error("Failed to find services by professional",
			zap.Error(err),
			zap.String("professional_id", professionalID.String()),
		)
		return nil, fmt.Errorf("find services by professional %s: %w", professionalID.String(), err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, category = $4, price = $5,
		    duration = $6, images = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Duration,
		service.Images,
		service.IsActive,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
		return fmt.Errorf("update service %s: %w", service.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s not found", service.ID.String())
	}

	return nil
}

func (r *serviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE services SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate service",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return fmt.Errorf("deactivate service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s not found", id.String())
	}

	return nil
}

// Search lists active services of active professionals, best rated first.
func (r *serviceRepository) Search(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error) {
	query := `
		SELECT s.id, s.professional_id, s.name, s.description, s.category, s.price, s.duration, s.images, s.is_active, s.created_at, s.updated_at
		FROM services s
		JOIN professional_profiles p ON p.id = s.professional_id
		JOIN users u ON u.id = p.user_id
		WHERE s.is_active = TRUE AND u.is_active = TRUE
	`

	args := []any{}
	argN := 1

	if filter.Category != "" && filter.Category != "all" {
		query += fmt.Sprintf(" AND s.category = $%d", argN)
		args = append(args, filter.Category)
		argN++
	}

	if filter.VerifiedOnly {
		query += fmt.Sprintf(" AND u.verification_status = $%d", argN)
		args = append(args, entity.VerificationApproved)
		argN++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.description ILIKE $%d OR p.business_name ILIKE $%d)", argN, argN, argN)
		args = append(args, "%"+filter.Search+"%")
		argN++
	}

	query += " ORDER BY p.average_rating DESC, s.created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search services",
			zap.Error(err),
			zap.String("category", filter.Category),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("search services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}
