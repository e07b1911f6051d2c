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

type PgxPayableRepository struct {
	pool *pgxpool.Pool
}

func NewPayableRepository(pool *pgxpool.Pool) portsrepo.PayableRepository {
	return &PgxPayableRepository{pool: pool}
}

var _ portsrepo.PayableRepository = (*PgxPayableRepository)(nil)

const payableColumns = `payable_id, supplier_id, invoice_no, amount, due_date, status, journal_id, paid_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPayable(row pgx.Row) (*domain.Payable, error) {
	var p domain.Payable
	var journalID *string
	err := row.Scan(
		&p.PayableID, &p.SupplierID, &p.InvoiceNo, &p.Amount, &p.DueDate,
		&p.Status, &journalID, &p.PaidAt,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if journalID != nil {
		p.JournalID = *journalID
	}
	return &p, nil
}

func (r *PgxPayableRepository) SavePayable(ctx context.Context, p domain.Payable) error {
	query := `
		INSERT INTO payables (payable_id, supplier_id, invoice_no, amount, due_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		p.PayableID, p.SupplierID, p.InvoiceNo, p.Amount, p.DueDate, p.Status,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: invoice %s", appErr, p.InvoiceNo)
		}
		return fmt.Errorf("failed to save payable %s: %w", p.PayableID, err)
	}
	return nil
}

func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE payable_id = $1;`
	p, err := scanPayable(r.pool.QueryRow(ctx, query, payableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable %s: %w", payableID, err)
	}
	return p, nil
}

func (r *PgxPayableRepository) ListPayables(ctx context.Context, supplierID string, status string) ([]domain.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables`
	conditions := []string{}
	args := []interface{}{}

	if supplierID != "" {
		args = append(args, supplierID)
		conditions = append(conditions, fmt.Sprintf("supplier_id = $%d", len(args)))
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
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []domain.Payable{}
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", rows.Err())
	}
	return payables, nil
}

func (r *PgxPayableRepository) SettlePayable(ctx context.Context, payableID string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for payable %s: %w", payableID, err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE payables
		SET status = $2, journal_id = $3, paid_at = $4, last_updated_at = $4, last_updated_by = $5
		WHERE payable_id = $1 AND status = $6;
	`, payableID, domain.InvoicePaid, journal.JournalID, now, userID, domain.InvoiceOpen)
	if err != nil {
		return fmt.Errorf("failed to settle payable %s: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var status domain.InvoiceStatus
		findErr := tx.QueryRow(ctx, `SELECT status FROM payables WHERE payable_id = $1;`, payableID).Scan(&status)
		if errors.Is(findErr, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check payable status for %s: %w", payableID, findErr)
		}
		return fmt.Errorf("%w: payable %s is already %s", apperrors.ErrConflict, payableID, status)
	}

	if err := insertJournalTx(ctx, tx, journal); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payable settlement %s: %w", payableID, err)
	}
	return nil
}
