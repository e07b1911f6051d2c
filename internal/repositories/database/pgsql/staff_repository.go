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

type PgxStaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepository {
	return &PgxStaffRepository{pool: pool}
}

var _ portsrepo.StaffRepository = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, name, photo_url, position, department, created_at, created_by, last_updated_at, last_updated_by`

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(
		&s.StaffID,
		&s.Name,
		&s.PhotoURL,
		&s.Position,
		&s.Department,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		staff.StaffID, staff.Name, staff.PhotoURL, staff.Position, staff.Department,
		staff.CreatedAt, staff.CreatedBy, staff.LastUpdatedAt, staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff %s: %w", staff.StaffID, err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`
	s, err := scanStaff(r.pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}
	return s, nil
}

func (r *PgxStaffRepository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staff := []domain.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", rows.Err())
	}
	return staff, nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	query := `
		UPDATE staff
		SET name = $2, photo_url = $3, position = $4, department = $5, last_updated_at = $6, last_updated_by = $7
		WHERE staff_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		staff.StaffID, staff.Name, staff.PhotoURL, staff.Position, staff.Department,
		staff.LastUpdatedAt, staff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff %s: %w", staff.StaffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1;`, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", staffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
