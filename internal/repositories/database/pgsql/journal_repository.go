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

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_date, description, status, reversal_of_journal_id, created_at, created_by, last_updated_at, last_updated_by`
const journalLineColumns = `line_id, journal_id, account_id, amount, line_type, notes, created_at, created_by, last_updated_at, last_updated_by`

// insertJournalTx writes the journal row and its lines inside the given transaction.
func insertJournalTx(ctx context.Context, tx pgx.Tx, journal domain.Journal) error {
	var reversalOf interface{}
	if journal.ReversalOfJournalID != "" {
		reversalOf = journal.ReversalOfJournalID
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO journals (`+journalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		journal.JournalID, journal.JournalDate, journal.Description, journal.Status,
		reversalOf,
		journal.CreatedAt, journal.CreatedBy, journal.LastUpdatedAt, journal.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: journal %s", appErr, journal.JournalID)
		}
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range journal.Lines {
		batch.Queue(`
			INSERT INTO journal_lines (`+journalLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`,
			line.LineID, journal.JournalID, line.AccountID, line.Amount, line.LineType, line.Notes,
			line.CreatedAt, line.CreatedBy, line.LastUpdatedAt, line.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert journal line for journal %s: %w", journal.JournalID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close journal line batch: %w", err)
	}
	return batchErr
}

// applyBalanceChangesTx applies account balance deltas inside the given transaction.
func applyBalanceChangesTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`

	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID, delta := range balanceChanges {
		if !delta.IsZero() {
			batch.Queue(query, accountID, delta, now, userID)
			accountIDs = append(accountIDs, accountID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for journal %s: %w", journal.JournalID, err)
	}
	defer tx.Rollback(ctx)

	if err := insertJournalTx(ctx, tx, journal); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, journal.CreatedBy, journal.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal %s: %w", journal.JournalID, err)
	}
	return nil
}

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var j domain.Journal
	var reversalOf *string
	err := row.Scan(
		&j.JournalID,
		&j.JournalDate,
		&j.Description,
		&j.Status,
		&reversalOf,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if reversalOf != nil {
		j.ReversalOfJournalID = *reversalOf
	}
	return &j, nil
}

func (r *PgxJournalRepository) findJournalLines(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_id = $1 ORDER BY created_at, line_id;`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var l domain.JournalLine
		err := rows.Scan(
			&l.LineID, &l.JournalID, &l.AccountID, &l.Amount, &l.LineType, &l.Notes,
			&l.CreatedAt, &l.CreatedBy, &l.LastUpdatedAt, &l.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, l)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", rows.Err())
	}
	return lines, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	journal, err := scanJournal(r.pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	journal.Lines, err = r.findJournalLines(ctx, journalID)
	if err != nil {
		return nil, err
	}
	return journal, nil
}

func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM journals;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journals: %w", err)
	}

	query := `SELECT ` + journalColumns + ` FROM journals ORDER BY journal_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *journal)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating journal rows: %w", rows.Err())
	}

	return journals, total, nil
}

// ReverseJournal marks the original REVERSED and posts the mirror journal
// atomically. The original must currently be POSTED.
func (r *PgxJournalRepository) ReverseJournal(ctx context.Context, originalJournalID string, reversing domain.Journal, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for reversal of %s: %w", originalJournalID, err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE journals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = $5;
	`, originalJournalID, domain.Reversed, reversing.CreatedAt, reversing.CreatedBy, domain.Posted)
	if err != nil {
		return fmt.Errorf("failed to mark journal %s reversed: %w", originalJournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Not found, or already reversed.
		var status domain.JournalStatus
		findErr := tx.QueryRow(ctx, `SELECT status FROM journals WHERE journal_id = $1;`, originalJournalID).Scan(&status)
		if errors.Is(findErr, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check journal status for %s: %w", originalJournalID, findErr)
		}
		return fmt.Errorf("%w: journal %s is %s", apperrors.ErrConflict, originalJournalID, status)
	}

	if err := insertJournalTx(ctx, tx, reversing); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, reversing.CreatedBy, reversing.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reversal of journal %s: %w", originalJournalID, err)
	}
	return nil
}
