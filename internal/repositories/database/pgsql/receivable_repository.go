package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxReceivableRepository struct {
	pool *pgxpool.Pool
}

func NewReceivableRepository(pool *pgxpool.Pool) portsrepo.ReceivableRepository {
	return &PgxReceivableRepository{pool: pool}
}

var _ portsrepo.ReceivableRepository = (*PgxReceivableRepository)(nil)

const receivableColumns = `receivable_id, client_id, invoice_no, amount, due_date, status, journal_id, paid_at, created_at, created_by, last_updated_at, last_updated_by`

func scanReceivable(row pgx.Row) (*domain.Receivable, error) {
	var rec domain.Receivable
	var journalID *string
	err := row.Scan(
		&rec.ReceivableID, &rec.ClientID, &rec.InvoiceNo, &rec.Amount, &rec.DueDate,
		&rec.Status, &journalID, &rec.PaidAt,
		&rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if journalID != nil {
		rec.JournalID = *journalID
	}
	return &rec, nil
}

func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, rec domain.Receivable) error {
	query := `
		INSERT INTO receivables (receivable_id, client_id, invoice_no, amount, due_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ReceivableID, rec.ClientID, rec.InvoiceNo, rec.Amount, rec.DueDate, rec.Status,
		rec.CreatedAt, rec.CreatedBy, rec.LastUpdatedAt, rec.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: invoice %s", appErr, rec.InvoiceNo)
		}
		return fmt.Errorf("failed to save receivable %s: %w", rec.ReceivableID, err)
	}
	return nil
}

func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE receivable_id = $1;`
	rec, err := scanReceivable(r.pool.QueryRow(ctx, query, receivableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receivable %s: %w", receivableID, err)
	}
	return rec, nil
}

func (r *PgxReceivableRepository) ListReceivables(ctx context.Context, clientID string, status string) ([]domain.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables`
	conditions := []string{}
	args := []interface{}{}

	if clientID != "" {
		args = append(args, clientID)
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY due_date, created_at;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	receivables := []domain.Receivable{}
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receivable row: %w", err)
		}
		receivables = append(receivables, *rec)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receivable rows: %w", rows.Err())
	}
	return receivables, nil
}

// SettleBulk locks the batch, requires every receivable to be open, then
// marks them paid and posts the batch journal. Any shortfall rolls back everything.
func (r *PgxReceivableRepository) SettleBulk(ctx context.Context, receivableIDs []string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk settlement: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT receivable_id, status FROM receivables
		WHERE receivable_id = ANY($1)
		FOR UPDATE;
	`, receivableIDs)
	if err != nil {
		return fmt.Errorf("failed to lock receivables for settlement: %w", err)
	}

	found := make(map[string]domain.InvoiceStatus, len(receivableIDs))
	for rows.Next() {
		var id string
		var status domain.InvoiceStatus
		if err := rows.Scan(&id, &status); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan locked receivable row: %w", err)
		}
		found[id] = status
	}
	rows.Close()
	if rows.Err() != nil {
		return fmt.Errorf("error iterating locked receivable rows: %w", rows.Err())
	}

	for _, id := range receivableIDs {
		status, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: receivable %s", apperrors.ErrNotFound, id)
		}
		if status != domain.InvoiceOpen {
			return fmt.Errorf("%w: receivable %s is already %s", apperrors.ErrConflict, id, status)
		}
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE receivables
		SET status = $2, journal_id = $3, paid_at = $4, last_updated_at = $4, last_updated_by = $5
		WHERE receivable_id = ANY($1);
	`, receivableIDs, domain.InvoicePaid, journal.JournalID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark receivables paid: %w", err)
	}
	if cmdTag.RowsAffected() != int64(len(receivableIDs)) {
		return fmt.Errorf("settled %d of %d receivables, rolling back", cmdTag.RowsAffected(), len(receivableIDs))
	}

	if err := insertJournalTx(ctx, tx, journal); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bulk settlement: %w", err)
	}
	return nil
}
