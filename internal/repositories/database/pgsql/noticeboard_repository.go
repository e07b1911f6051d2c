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

type PgxNoticeRepository struct {
	pool *pgxpool.Pool
}

func NewNoticeRepository(pool *pgxpool.Pool) portsrepo.NoticeRepository {
	return &PgxNoticeRepository{pool: pool}
}

var _ portsrepo.NoticeRepository = (*PgxNoticeRepository)(nil)

const noticeColumns = `notice_id, title, body, country, status, created_at, created_by, last_updated_at, last_updated_by`

func scanNotice(row pgx.Row) (*domain.Notice, error) {
	var n domain.Notice
	var country *string
	err := row.Scan(
		&n.NoticeID, &n.Title, &n.Body, &country, &n.Status,
		&n.CreatedAt, &n.CreatedBy, &n.LastUpdatedAt, &n.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if country != nil {
		n.Country = *country
	}
	return &n, nil
}

func (r *PgxNoticeRepository) SaveNotice(ctx context.Context, n domain.Notice) error {
	query := `
		INSERT INTO notices (` + noticeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		n.NoticeID, n.Title, n.Body, nullableString(n.Country), n.Status,
		n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save notice %s: %w", n.NoticeID, err)
	}
	return nil
}

func (r *PgxNoticeRepository) FindNoticeByID(ctx context.Context, noticeID string) (*domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE notice_id = $1;`
	n, err := scanNotice(r.pool.QueryRow(ctx, query, noticeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notice %s: %w", noticeID, err)
	}
	return n, nil
}

// ListNotices filters by status and country when given. A country filter also
// matches global notices with no country set.
func (r *PgxNoticeRepository) ListNotices(ctx context.Context, country, status string) ([]domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if country != "" {
		args = append(args, country)
		query += fmt.Sprintf(" AND (country = $%d OR country IS NULL)", len(args))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	notices := []domain.Notice{}
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice row: %w", err)
		}
		notices = append(notices, *n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", rows.Err())
	}
	return notices, nil
}

func (r *PgxNoticeRepository) UpdateNotice(ctx context.Context, n domain.Notice) error {
	query := `
		UPDATE notices
		SET title = $2, body = $3, country = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE notice_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		n.NoticeID, n.Title, n.Body, nullableString(n.Country), n.Status,
		n.LastUpdatedAt, n.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update notice %s: %w", n.NoticeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNoticeRepository) DeleteNotice(ctx context.Context, noticeID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE notice_id = $1;`, noticeID)
	if err != nil {
		return fmt.Errorf("failed to delete notice %s: %w", noticeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxTaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{pool: pool}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, title, description, assignee_id, due_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var assigneeID *string
	err := row.Scan(
		&t.TaskID, &t.Title, &t.Description, &assigneeID, &t.DueDate, &t.Status,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if assigneeID != nil {
		t.AssigneeID = *assigneeID
	}
	return &t, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, t domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		t.TaskID, t.Title, t.Description, nullableString(t.AssigneeID), t.DueDate, t.Status,
		t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save task %s: %w", t.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`
	t, err := scanTask(r.pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	return t, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, assigneeID, status string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []any{}
	if assigneeID != "" {
		args = append(args, assigneeID)
		query += fmt.Sprintf(" AND assignee_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += ` ORDER BY due_date NULLS LAST, created_at;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, t domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, assignee_id = $4, due_date = $5, status = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE task_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		t.TaskID, t.Title, t.Description, nullableString(t.AssigneeID), t.DueDate, t.Status,
		t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update task %s: %w", t.TaskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
