package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxEquityRepository struct {
	pool *pgxpool.Pool
}

func NewEquityRepository(pool *pgxpool.Pool) portsrepo.EquityRepository {
	return &PgxEquityRepository{pool: pool}
}

var _ portsrepo.EquityRepository = (*PgxEquityRepository)(nil)

const equityColumns = `entry_id, account_id, entry_type, amount, entry_date, notes, created_at, created_by, last_updated_at, last_updated_by`

const insertEquityEntry = `
	INSERT INTO equity_entries (` + equityColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

func equityEntryArgs(e domain.EquityEntry) []interface{} {
	return []interface{}{
		e.EntryID, e.AccountID, e.EntryType, e.Amount, e.EntryDate, e.Notes,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	}
}

func (r *PgxEquityRepository) SaveEquityEntry(ctx context.Context, e domain.EquityEntry) error {
	_, err := r.pool.Exec(ctx, insertEquityEntry, equityEntryArgs(e)...)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save equity entry %s: %w", e.EntryID, err)
	}
	return nil
}

func (r *PgxEquityRepository) ListEquityEntries(ctx context.Context, limit, offset int) ([]domain.EquityEntry, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM equity_entries;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count equity entries: %w", err)
	}

	query := `SELECT ` + equityColumns + ` FROM equity_entries ORDER BY entry_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query equity entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.EquityEntry{}
	for rows.Next() {
		var e domain.EquityEntry
		err := rows.Scan(
			&e.EntryID, &e.AccountID, &e.EntryType, &e.Amount, &e.EntryDate, &e.Notes,
			&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan equity entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating equity entry rows: %w", rows.Err())
	}

	return entries, total, nil
}

// SaveEquityEntriesBulk inserts the whole batch in one transaction so a
// failing row leaves no partial state behind.
func (r *PgxEquityRepository) SaveEquityEntriesBulk(ctx context.Context, entries []domain.EquityEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk equity insert: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertEquityEntry, equityEntryArgs(e)...)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			if appErr := translatePgError(err); appErr != nil {
				batchErr = fmt.Errorf("%w: equity entry %s", appErr, entries[i].EntryID)
			} else {
				batchErr = fmt.Errorf("failed to insert equity entry %s: %w", entries[i].EntryID, err)
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close equity entry batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bulk equity insert: %w", err)
	}
	return nil
}

type PgxDepreciationRepository struct {
	pool *pgxpool.Pool
}

func NewDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepository {
	return &PgxDepreciationRepository{pool: pool}
}

var _ portsrepo.DepreciationRepository = (*PgxDepreciationRepository)(nil)

const depreciationColumns = `entry_id, asset_account_id, expense_account_id, amount, period, notes, created_at, created_by, last_updated_at, last_updated_by`

const insertDepreciationEntry = `
	INSERT INTO depreciation_entries (` + depreciationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

func depreciationEntryArgs(e domain.DepreciationEntry) []interface{} {
	return []interface{}{
		e.EntryID, e.AssetAccountID, e.ExpenseAccountID, e.Amount, e.Period, e.Notes,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	}
}

func (r *PgxDepreciationRepository) SaveDepreciationEntry(ctx context.Context, e domain.DepreciationEntry) error {
	_, err := r.pool.Exec(ctx, insertDepreciationEntry, depreciationEntryArgs(e)...)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save depreciation entry %s: %w", e.EntryID, err)
	}
	return nil
}

func (r *PgxDepreciationRepository) ListDepreciationEntries(ctx context.Context, limit, offset int) ([]domain.DepreciationEntry, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM depreciation_entries;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count depreciation entries: %w", err)
	}

	query := `SELECT ` + depreciationColumns + ` FROM depreciation_entries ORDER BY period DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query depreciation entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.DepreciationEntry{}
	for rows.Next() {
		var e domain.DepreciationEntry
		err := rows.Scan(
			&e.EntryID, &e.AssetAccountID, &e.ExpenseAccountID, &e.Amount, &e.Period, &e.Notes,
			&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan depreciation entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating depreciation entry rows: %w", rows.Err())
	}

	return entries, total, nil
}

func (r *PgxDepreciationRepository) SaveDepreciationEntriesBulk(ctx context.Context, entries []domain.DepreciationEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk depreciation insert: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertDepreciationEntry, depreciationEntryArgs(e)...)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			if appErr := translatePgError(err); appErr != nil {
				batchErr = fmt.Errorf("%w: depreciation entry %s", appErr, entries[i].EntryID)
			} else {
				batchErr = fmt.Errorf("failed to insert depreciation entry %s: %w", entries[i].EntryID, err)
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close depreciation entry batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bulk depreciation insert: %w", err)
	}
	return nil
}
