package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxServiceTypeRepository struct {
	pool *pgxpool.Pool
}

func NewServiceTypeRepository(pool *pgxpool.Pool) portsrepo.ServiceTypeRepository {
	return &PgxServiceTypeRepository{pool: pool}
}

var _ portsrepo.ServiceTypeRepository = (*PgxServiceTypeRepository)(nil)

const serviceTypeColumns = `service_type_id, name, description, created_at, created_by, last_updated_at, last_updated_by`

func scanServiceType(row pgx.Row) (*domain.ServiceType, error) {
	var st domain.ServiceType
	err := row.Scan(
		&st.ServiceTypeID,
		&st.Name,
		&st.Description,
		&st.CreatedAt,
		&st.CreatedBy,
		&st.LastUpdatedAt,
		&st.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *PgxServiceTypeRepository) SaveServiceType(ctx context.Context, st domain.ServiceType) error {
	query := `
		INSERT INTO service_types (` + serviceTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		st.ServiceTypeID, st.Name, st.Description,
		st.CreatedAt, st.CreatedBy, st.LastUpdatedAt, st.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: service type %s", appErr, st.Name)
		}
		return fmt.Errorf("failed to save service type %s: %w", st.ServiceTypeID, err)
	}
	return nil
}

func (r *PgxServiceTypeRepository) FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types WHERE service_type_id = $1;`
	st, err := scanServiceType(r.pool.QueryRow(ctx, query, serviceTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service type %s: %w", serviceTypeID, err)
	}
	return st, nil
}

func (r *PgxServiceTypeRepository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service types: %w", err)
	}
	defer rows.Close()

	types := []domain.ServiceType{}
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service type row: %w", err)
		}
		types = append(types, *st)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service type rows: %w", rows.Err())
	}
	return types, nil
}

func (r *PgxServiceTypeRepository) UpdateServiceType(ctx context.Context, st domain.ServiceType) error {
	query := `
		UPDATE service_types
		SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE service_type_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		st.ServiceTypeID, st.Name, st.Description, st.LastUpdatedAt, st.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update service type %s: %w", st.ServiceTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteServiceType refuses to delete a type that requests still reference.
func (r *PgxServiceTypeRepository) DeleteServiceType(ctx context.Context, serviceTypeID string) error {
	var refCount int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM requests WHERE service_type_id = $1;`, serviceTypeID).Scan(&refCount)
	if err != nil {
		return fmt.Errorf("failed to count requests for service type %s: %w", serviceTypeID, err)
	}
	if refCount > 0 {
		return fmt.Errorf("%w: %d requests still reference this service type", apperrors.ErrConflict, refCount)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM service_types WHERE service_type_id = $1;`, serviceTypeID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to delete service type %s: %w", serviceTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
