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

type PgxCashRepository struct {
	pool *pgxpool.Pool
}

func NewCashRepository(pool *pgxpool.Pool) portsrepo.CashRepository {
	return &PgxCashRepository{pool: pool}
}

var _ portsrepo.CashRepository = (*PgxCashRepository)(nil)

const cashAccountColumns = `cash_account_id, name, opening_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`
const cashEntryColumns = `entry_id, cash_account_id, entry_date, description, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanCashAccount(row pgx.Row) (*domain.CashAccount, error) {
	var a domain.CashAccount
	err := row.Scan(
		&a.CashAccountID, &a.Name, &a.OpeningBalance, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxCashRepository) SaveCashAccount(ctx context.Context, a domain.CashAccount) error {
	query := `
		INSERT INTO cash_accounts (` + cashAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		a.CashAccountID, a.Name, a.OpeningBalance, a.IsActive,
		a.CreatedAt, a.CreatedBy, a.LastUpdatedAt, a.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: cash account %s", appErr, a.Name)
		}
		return fmt.Errorf("failed to save cash account %s: %w", a.CashAccountID, err)
	}
	return nil
}

func (r *PgxCashRepository) FindCashAccountByID(ctx context.Context, cashAccountID string) (*domain.CashAccount, error) {
	query := `SELECT ` + cashAccountColumns + ` FROM cash_accounts WHERE cash_account_id = $1;`
	a, err := scanCashAccount(r.pool.QueryRow(ctx, query, cashAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash account %s: %w", cashAccountID, err)
	}
	return a, nil
}

func (r *PgxCashRepository) ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	query := `SELECT ` + cashAccountColumns + ` FROM cash_accounts WHERE is_active = TRUE ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.CashAccount{}
	for rows.Next() {
		a, err := scanCashAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash account row: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cash account rows: %w", rows.Err())
	}
	return accounts, nil
}

func (r *PgxCashRepository) UpdateCashAccount(ctx context.Context, a domain.CashAccount) error {
	query := `
		UPDATE cash_accounts
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE cash_account_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		a.CashAccountID, a.Name, a.IsActive, a.LastUpdatedAt, a.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update cash account %s: %w", a.CashAccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCashRepository) DeactivateCashAccount(ctx context.Context, cashAccountID string, userID string, now time.Time) error {
	query := `
		UPDATE cash_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE cash_account_id = $1 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, cashAccountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate cash account %s: %w", cashAccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		_, findErr := r.FindCashAccountByID(ctx, cashAccountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check cash account status for %s: %w", cashAccountID, findErr)
		}
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PgxCashRepository) SaveCashEntry(ctx context.Context, e domain.CashEntry) error {
	query := `
		INSERT INTO cash_entries (` + cashEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		e.EntryID, e.CashAccountID, e.EntryDate, e.Description, e.Amount,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save cash entry %s: %w", e.EntryID, err)
	}
	return nil
}

// ListCashEntries returns one page in ledger order (entry date, then insert
// time) together with the total count and the sum of all amounts before the
// page, so the caller can seed running balances without loading everything.
func (r *PgxCashRepository) ListCashEntries(ctx context.Context, cashAccountID string, limit, offset int) ([]domain.CashEntry, int64, decimal.Decimal, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_entries WHERE cash_account_id = $1;`, cashAccountID).Scan(&total)
	if err != nil {
		return nil, 0, decimal.Zero, fmt.Errorf("failed to count cash entries: %w", err)
	}

	priorSum := decimal.Zero
	if offset > 0 {
		err = r.pool.QueryRow(ctx, `
			SELECT COALESCE(SUM(amount), 0) FROM (
				SELECT amount FROM cash_entries
				WHERE cash_account_id = $1
				ORDER BY entry_date, created_at, entry_id
				LIMIT $2
			) prior;
		`, cashAccountID, offset).Scan(&priorSum)
		if err != nil {
			return nil, 0, decimal.Zero, fmt.Errorf("failed to sum prior cash entries: %w", err)
		}
	}

	query := `
		SELECT ` + cashEntryColumns + `
		FROM cash_entries
		WHERE cash_account_id = $1
		ORDER BY entry_date, created_at, entry_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, cashAccountID, limit, offset)
	if err != nil {
		return nil, 0, decimal.Zero, fmt.Errorf("failed to query cash entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.CashEntry{}
	for rows.Next() {
		var e domain.CashEntry
		err := rows.Scan(
			&e.EntryID, &e.CashAccountID, &e.EntryDate, &e.Description, &e.Amount,
			&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
		)
		if err != nil {
			return nil, 0, decimal.Zero, fmt.Errorf("failed to scan cash entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, 0, decimal.Zero, fmt.Errorf("error iterating cash entry rows: %w", rows.Err())
	}

	return entries, total, priorSum, nil
}
