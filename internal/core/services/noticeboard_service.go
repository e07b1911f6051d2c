package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// NoticeboardService manages notices and tasks.
type NoticeboardService struct {
	noticeRepo portsrepo.NoticeRepository
	taskRepo   portsrepo.TaskRepository
	repRepo    portsrepo.SalesRepRepository
}

func NewNoticeboardService(noticeRepo portsrepo.NoticeRepository, taskRepo portsrepo.TaskRepository, repRepo portsrepo.SalesRepRepository) *NoticeboardService {
	return &NoticeboardService{
		noticeRepo: noticeRepo,
		taskRepo:   taskRepo,
		repRepo:    repRepo,
	}
}

// CreateNotice publishes a new Active notice, optionally scoped to a country.
func (s *NoticeboardService) CreateNotice(ctx context.Context, req dto.CreateNoticeRequest, creatorUserID string) (*domain.Notice, error) {
	now := time.Now()
	notice := domain.Notice{
		NoticeID:    uuid.NewString(),
		Title:       req.Title,
		Body:        req.Body,
		Country:     req.Country,
		Status:      domain.NoticeActive,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.noticeRepo.SaveNotice(ctx, notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (s *NoticeboardService) GetNoticeByID(ctx context.Context, noticeID string) (*domain.Notice, error) {
	return s.noticeRepo.FindNoticeByID(ctx, noticeID)
}

func (s *NoticeboardService) ListNotices(ctx context.Context, country, status string) ([]domain.Notice, error) {
	return s.noticeRepo.ListNotices(ctx, country, status)
}

func (s *NoticeboardService) UpdateNotice(ctx context.Context, noticeID string, req dto.UpdateNoticeRequest, updaterUserID string) (*domain.Notice, error) {
	notice, err := s.noticeRepo.FindNoticeByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if req.Country != nil {
		notice.Country = *req.Country
	}
	if req.Status != nil {
		notice.Status = domain.NoticeStatus(*req.Status)
	}
	notice.Touch(updaterUserID, time.Now())

	if err := s.noticeRepo.UpdateNotice(ctx, *notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeboardService) DeleteNotice(ctx context.Context, noticeID string) error {
	return s.noticeRepo.DeleteNotice(ctx, noticeID)
}

// CreateTask creates a Pending task, optionally assigned to a sales rep.
func (s *NoticeboardService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	if req.AssigneeID != "" {
		if _, err := s.repRepo.FindSalesRepByID(ctx, req.AssigneeID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	task := domain.Task{
		TaskID:      uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Status:      domain.TaskPending,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *NoticeboardService) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *NoticeboardService) ListTasks(ctx context.Context, assigneeID, status string) ([]domain.Task, error) {
	return s.taskRepo.ListTasks(ctx, assigneeID, status)
}

func (s *NoticeboardService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID != "" {
			if _, err := s.repRepo.FindSalesRepByID(ctx, *req.AssigneeID); err != nil {
				return nil, err
			}
		}
		task.AssigneeID = *req.AssigneeID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	task.Touch(updaterUserID, time.Now())

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *NoticeboardService) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.DeleteTask(ctx, taskID)
}
