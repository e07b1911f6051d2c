package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

func NewSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{pool: pool}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, contact_person, phone, email, country, created_at, created_by, last_updated_at, last_updated_by`
const paymentColumns = `payment_id, supplier_id, amount, payment_date, status, journal_id, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Country,
		&s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanPayment(row pgx.Row) (*domain.SupplierPayment, error) {
	var p domain.SupplierPayment
	var journalID *string
	err := row.Scan(
		&p.PaymentID, &p.SupplierID, &p.Amount, &p.PaymentDate, &p.Status, &journalID, &p.Notes,
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

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		supplier.SupplierID, supplier.Name, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.Country,
		supplier.CreatedAt, supplier.CreatedBy, supplier.LastUpdatedAt, supplier.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: supplier %s", appErr, supplier.Name)
		}
		return fmt.Errorf("failed to save supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	s, err := scanSupplier(r.pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return s, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, phone = $4, email = $5, country = $6, last_updated_at = $7, last_updated_by = $8
		WHERE supplier_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		supplier.SupplierID, supplier.Name, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.Country, supplier.LastUpdatedAt, supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: supplier has payments or payables", appErr)
		}
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) SavePayment(ctx context.Context, payment domain.SupplierPayment) error {
	query := `
		INSERT INTO supplier_payments (payment_id, supplier_id, amount, payment_date, status, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		payment.PaymentID, payment.SupplierID, payment.Amount, payment.PaymentDate,
		payment.Status, payment.Notes,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM supplier_payments WHERE payment_id = $1;`
	p, err := scanPayment(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return p, nil
}

func (r *PgxSupplierRepository) ListPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM supplier_payments`
	args := []interface{}{}
	if supplierID != "" {
		query += ` WHERE supplier_id = $1`
		args = append(args, supplierID)
	}
	query += ` ORDER BY payment_date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.SupplierPayment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

// ConfirmPayment transitions in_pay -> confirmed and posts the ledger journal
// in one transaction. A second confirm finds zero rows and reports ErrConflict.
func (r *PgxSupplierRepository) ConfirmPayment(ctx context.Context, paymentID string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for payment %s: %w", paymentID, err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE supplier_payments
		SET status = $2, journal_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payment_id = $1 AND status = $6;
	`, paymentID, domain.PaymentConfirmed, journal.JournalID, now, userID, domain.PaymentInPay)
	if err != nil {
		return fmt.Errorf("failed to confirm payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		var status domain.PaymentStatus
		findErr := tx.QueryRow(ctx, `SELECT status FROM supplier_payments WHERE payment_id = $1;`, paymentID).Scan(&status)
		if errors.Is(findErr, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check payment status for %s: %w", paymentID, findErr)
		}
		return fmt.Errorf("%w: payment %s is already %s", apperrors.ErrConflict, paymentID, status)
	}

	if err := insertJournalTx(ctx, tx, journal); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment confirmation %s: %w", paymentID, err)
	}
	return nil
}
