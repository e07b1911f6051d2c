package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{pool: pool}
}

var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

const feedbackColumns = `report_id, rep_id, client_id, country, visit_date, rating, comments, created_at, created_by, last_updated_at, last_updated_by`
const visibilityColumns = `report_id, rep_id, client_id, country, visit_date, shelf_share, notes, created_at, created_by, last_updated_at, last_updated_by`

// reportFilterClause builds the WHERE tail shared by both report tables.
func reportFilterClause(f domain.ReportFilter) (string, []any) {
	clause := ` WHERE 1=1`
	args := []any{}
	if f.Country != "" {
		args = append(args, f.Country)
		clause += fmt.Sprintf(" AND country = $%d", len(args))
	}
	if f.RepID != "" {
		args = append(args, f.RepID)
		clause += fmt.Sprintf(" AND rep_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		clause += fmt.Sprintf(" AND visit_date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		clause += fmt.Sprintf(" AND visit_date <= $%d", len(args))
	}
	return clause, args
}

func (r *PgxReportRepository) SaveFeedbackReport(ctx context.Context, report domain.FeedbackReport) error {
	query := `
		INSERT INTO feedback_reports (` + feedbackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		report.ReportID, report.RepID, report.ClientID, report.Country, report.VisitDate,
		report.Rating, report.Comments,
		report.CreatedAt, report.CreatedBy, report.LastUpdatedAt, report.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save feedback report %s: %w", report.ReportID, err)
	}
	return nil
}

func scanFeedbackReport(row pgx.Row) (*domain.FeedbackReport, error) {
	var report domain.FeedbackReport
	err := row.Scan(
		&report.ReportID, &report.RepID, &report.ClientID, &report.Country, &report.VisitDate,
		&report.Rating, &report.Comments,
		&report.CreatedAt, &report.CreatedBy, &report.LastUpdatedAt, &report.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *PgxReportRepository) queryFeedbackReports(ctx context.Context, query string, args []any) ([]domain.FeedbackReport, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.FeedbackReport{}
	for rows.Next() {
		report, err := scanFeedbackReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback report row: %w", err)
		}
		reports = append(reports, *report)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating feedback report rows: %w", rows.Err())
	}
	return reports, nil
}

func (r *PgxReportRepository) ListFeedbackReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.FeedbackReport, int64, error) {
	clause, args := reportFilterClause(f)

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedback_reports`+clause+`;`, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback reports: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + feedbackColumns + ` FROM feedback_reports` + clause +
		fmt.Sprintf(" ORDER BY visit_date DESC, report_id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))
	reports, err := r.queryFeedbackReports(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *PgxReportRepository) ListAllFeedbackReports(ctx context.Context, f domain.ReportFilter) ([]domain.FeedbackReport, error) {
	clause, args := reportFilterClause(f)
	query := `SELECT ` + feedbackColumns + ` FROM feedback_reports` + clause + ` ORDER BY visit_date DESC, report_id;`
	return r.queryFeedbackReports(ctx, query, args)
}

func (r *PgxReportRepository) SaveVisibilityReport(ctx context.Context, report domain.VisibilityReport) error {
	query := `
		INSERT INTO visibility_reports (` + visibilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		report.ReportID, report.RepID, report.ClientID, report.Country, report.VisitDate,
		report.ShelfShare, report.Notes,
		report.CreatedAt, report.CreatedBy, report.LastUpdatedAt, report.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to save visibility report %s: %w", report.ReportID, err)
	}
	return nil
}

func scanVisibilityReport(row pgx.Row) (*domain.VisibilityReport, error) {
	var report domain.VisibilityReport
	err := row.Scan(
		&report.ReportID, &report.RepID, &report.ClientID, &report.Country, &report.VisitDate,
		&report.ShelfShare, &report.Notes,
		&report.CreatedAt, &report.CreatedBy, &report.LastUpdatedAt, &report.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *PgxReportRepository) queryVisibilityReports(ctx context.Context, query string, args []any) ([]domain.VisibilityReport, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visibility reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.VisibilityReport{}
	for rows.Next() {
		report, err := scanVisibilityReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visibility report row: %w", err)
		}
		reports = append(reports, *report)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating visibility report rows: %w", rows.Err())
	}
	return reports, nil
}

func (r *PgxReportRepository) ListVisibilityReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.VisibilityReport, int64, error) {
	clause, args := reportFilterClause(f)

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visibility_reports`+clause+`;`, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count visibility reports: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + visibilityColumns + ` FROM visibility_reports` + clause +
		fmt.Sprintf(" ORDER BY visit_date DESC, report_id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))
	reports, err := r.queryVisibilityReports(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *PgxReportRepository) ListAllVisibilityReports(ctx context.Context, f domain.ReportFilter) ([]domain.VisibilityReport, error) {
	clause, args := reportFilterClause(f)
	query := `SELECT ` + visibilityColumns + ` FROM visibility_reports` + clause + ` ORDER BY visit_date DESC, report_id;`
	return r.queryVisibilityReports(ctx, query, args)
}
