package repositories

import (
	"context"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// ManagerRepository defines persistence for sales managers. Channel
// assignments are stored in a join table and replaced wholesale within the
// same transaction as the manager row.
type ManagerRepository interface {
	SaveManager(ctx context.Context, m domain.Manager) error
	FindManagerByID(ctx context.Context, managerID string) (*domain.Manager, error)
	ListManagers(ctx context.Context) ([]domain.Manager, error)
	UpdateManager(ctx context.Context, m domain.Manager) error
	DeleteManager(ctx context.Context, managerID string) error
}

// SalesRepRepository defines persistence for sales representatives.
type SalesRepRepository interface {
	SaveSalesRep(ctx context.Context, r domain.SalesRep) error
	FindSalesRepByID(ctx context.Context, repID string) (*domain.SalesRep, error)
	ListSalesReps(ctx context.Context, country string) ([]domain.SalesRep, error)
	UpdateSalesRep(ctx context.Context, r domain.SalesRep) error
	DeleteSalesRep(ctx context.Context, repID string) error
}

// ClientRepository defines persistence for client accounts.
type ClientRepository interface {
	SaveClient(ctx context.Context, c domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, country string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, c domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// NoticeRepository defines persistence for notices.
type NoticeRepository interface {
	SaveNotice(ctx context.Context, n domain.Notice) error
	FindNoticeByID(ctx context.Context, noticeID string) (*domain.Notice, error)
	ListNotices(ctx context.Context, country, status string) ([]domain.Notice, error)
	UpdateNotice(ctx context.Context, n domain.Notice) error
	DeleteNotice(ctx context.Context, noticeID string) error
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	SaveTask(ctx context.Context, t domain.Task) error
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, assigneeID, status string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

// ReportRepository defines persistence for feedback and visibility reports.
type ReportRepository interface {
	SaveFeedbackReport(ctx context.Context, r domain.FeedbackReport) error
	ListFeedbackReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.FeedbackReport, int64, error)
	// ListAllFeedbackReports returns the full filtered set, used for CSV export.
	ListAllFeedbackReports(ctx context.Context, f domain.ReportFilter) ([]domain.FeedbackReport, error)

	SaveVisibilityReport(ctx context.Context, r domain.VisibilityReport) error
	ListVisibilityReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.VisibilityReport, int64, error)
	ListAllVisibilityReports(ctx context.Context, f domain.ReportFilter) ([]domain.VisibilityReport, error)
}
