package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxRequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) portsrepo.RequestRepository {
	return &PgxRequestRepository{pool: pool}
}

var _ portsrepo.RequestRepository = (*PgxRequestRepository)(nil)

const requestColumns = `request_id, user_id, user_name, service_type_id, pickup_location, delivery_location, pickup_date, description, priority, status, my_status, created_at, created_by, last_updated_at, last_updated_by`

func scanRequest(row pgx.Row) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	err := row.Scan(
		&req.RequestID,
		&req.UserID,
		&req.UserName,
		&req.ServiceTypeID,
		&req.PickupLocation,
		&req.DeliveryLocation,
		&req.PickupDate,
		&req.Description,
		&req.Priority,
		&req.Status,
		&req.MyStatus,
		&req.CreatedAt,
		&req.CreatedBy,
		&req.LastUpdatedAt,
		&req.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PgxRequestRepository) SaveRequest(ctx context.Context, req domain.ServiceRequest) error {
	query := `
		INSERT INTO requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		req.RequestID, req.UserID, req.UserName, req.ServiceTypeID,
		req.PickupLocation, req.DeliveryLocation, req.PickupDate,
		req.Description, req.Priority, req.Status, req.MyStatus,
		req.CreatedAt, req.CreatedBy, req.LastUpdatedAt, req.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save request %s: %w", req.RequestID, err)
	}
	return nil
}

func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE request_id = $1;`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PgxRequestRepository) ListRequests(ctx context.Context, status, priority string) ([]domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests`
	conditions := []string{}
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if priority != "" {
		args = append(args, priority)
		conditions = append(conditions, fmt.Sprintf("priority = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.ServiceRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, *req)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", rows.Err())
	}
	return requests, nil
}

// PatchRequest builds the SET clause from only the fields present in the
// patch, so untouched columns keep their stored values.
func (r *PgxRequestRepository) PatchRequest(ctx context.Context, requestID string, patch domain.RequestPatch, userID string, now time.Time) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}

	sets := []string{}
	args := []interface{}{requestID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.PickupLocation != nil {
		addSet("pickup_location", *patch.PickupLocation)
	}
	if patch.DeliveryLocation != nil {
		addSet("delivery_location", *patch.DeliveryLocation)
	}
	if patch.PickupDate != nil {
		addSet("pickup_date", *patch.PickupDate)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Priority != nil {
		addSet("priority", *patch.Priority)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.MyStatus != nil {
		addSet("my_status", *patch.MyStatus)
	}
	addSet("last_updated_at", now)
	addSet("last_updated_by", userID)

	query := fmt.Sprintf("UPDATE requests SET %s WHERE request_id = $1;", strings.Join(sets, ", "))

	cmdTag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch request %s: %w", requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
