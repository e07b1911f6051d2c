package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

const reportDateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// ReportService manages feedback and visibility reports filed by sales reps,
// including their CSV exports.
type ReportService struct {
	reportRepo portsrepo.ReportRepository
	repRepo    portsrepo.SalesRepRepository
	clientRepo portsrepo.ClientRepository
}

func NewReportService(reportRepo portsrepo.ReportRepository, repRepo portsrepo.SalesRepRepository, clientRepo portsrepo.ClientRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		repRepo:    repRepo,
		clientRepo: clientRepo,
	}
}

// ParseFilter turns the raw query params into a report filter, validating
// the date bounds.
func ParseFilter(params dto.ReportQueryParams) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		Country: params.Country,
		RepID:   params.RepID,
	}
	if params.From != "" {
		from, err := time.Parse(reportDateLayout, params.From)
		if err != nil {
			return domain.ReportFilter{}, fmt.Errorf("%w: from must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse(reportDateLayout, params.To)
		if err != nil {
			return domain.ReportFilter{}, fmt.Errorf("%w: to must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return domain.ReportFilter{}, fmt.Errorf("%w: to is before from", apperrors.ErrValidation)
	}
	return filter, nil
}

func (s *ReportService) verifyVisit(ctx context.Context, repID, clientID string) error {
	if _, err := s.repRepo.FindSalesRepByID(ctx, repID); err != nil {
		return err
	}
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}
	return nil
}

func (s *ReportService) CreateFeedbackReport(ctx context.Context, req dto.CreateFeedbackReportRequest, creatorUserID string) (*domain.FeedbackReport, error) {
	if err := s.verifyVisit(ctx, req.RepID, req.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	report := domain.FeedbackReport{
		ReportID:    uuid.NewString(),
		RepID:       req.RepID,
		ClientID:    req.ClientID,
		Country:     req.Country,
		VisitDate:   req.VisitDate,
		Rating:      req.Rating,
		Comments:    req.Comments,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.reportRepo.SaveFeedbackReport(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) ListFeedbackReports(ctx context.Context, filter domain.ReportFilter, limit, offset int) ([]domain.FeedbackReport, int64, error) {
	return s.reportRepo.ListFeedbackReports(ctx, filter, limit, offset)
}

// ExportFeedbackReportsCSV renders the full filtered set as CSV.
func (s *ReportService) ExportFeedbackReportsCSV(ctx context.Context, filter domain.ReportFilter) ([]byte, error) {
	reports, err := s.reportRepo.ListAllFeedbackReports(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"reportID", "repID", "clientID", "country", "visitDate", "rating", "comments"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range reports {
		record := []string{
			r.ReportID, r.RepID, r.ClientID, r.Country,
			r.VisitDate.Format(reportDateLayout),
			strconv.Itoa(r.Rating),
			r.Comments,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) CreateVisibilityReport(ctx context.Context, req dto.CreateVisibilityReportRequest, creatorUserID string) (*domain.VisibilityReport, error) {
	if err := s.verifyVisit(ctx, req.RepID, req.ClientID); err != nil {
		return nil, err
	}
	if req.ShelfShare.IsNegative() || req.ShelfShare.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: shelf share must be between 0 and 100", apperrors.ErrValidation)
	}

	now := time.Now()
	report := domain.VisibilityReport{
		ReportID:    uuid.NewString(),
		RepID:       req.RepID,
		ClientID:    req.ClientID,
		Country:     req.Country,
		VisitDate:   req.VisitDate,
		ShelfShare:  req.ShelfShare,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.reportRepo.SaveVisibilityReport(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) ListVisibilityReports(ctx context.Context, filter domain.ReportFilter, limit, offset int) ([]domain.VisibilityReport, int64, error) {
	return s.reportRepo.ListVisibilityReports(ctx, filter, limit, offset)
}

// ExportVisibilityReportsCSV renders the full filtered set as CSV.
func (s *ReportService) ExportVisibilityReportsCSV(ctx context.Context, filter domain.ReportFilter) ([]byte, error) {
	reports, err := s.reportRepo.ListAllVisibilityReports(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"reportID", "repID", "clientID", "country", "visitDate", "shelfShare", "notes"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range reports {
		record := []string{
			r.ReportID, r.RepID, r.ClientID, r.Country,
			r.VisitDate.Format(reportDateLayout),
			r.ShelfShare.String(),
			r.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
