package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// SalesService manages the sales org: managers with their channel
// assignments, sales reps and client accounts.
type SalesService struct {
	managerRepo portsrepo.ManagerRepository
	repRepo     portsrepo.SalesRepRepository
	clientRepo  portsrepo.ClientRepository
}

func NewSalesService(managerRepo portsrepo.ManagerRepository, repRepo portsrepo.SalesRepRepository, clientRepo portsrepo.ClientRepository) *SalesService {
	return &SalesService{
		managerRepo: managerRepo,
		repRepo:     repRepo,
		clientRepo:  clientRepo,
	}
}

func toChannelTypes(channels []string) []domain.ChannelType {
	out := make([]domain.ChannelType, 0, len(channels))
	for _, ch := range channels {
		out = append(out, domain.ChannelType(ch))
	}
	return out
}

func (s *SalesService) CreateManager(ctx context.Context, req dto.CreateManagerRequest, creatorUserID string) (*domain.Manager, error) {
	now := time.Now()
	manager := domain.Manager{
		ManagerID:   uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		Region:      req.Region,
		Channels:    toChannelTypes(req.Channels),
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.managerRepo.SaveManager(ctx, manager); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (s *SalesService) GetManagerByID(ctx context.Context, managerID string) (*domain.Manager, error) {
	return s.managerRepo.FindManagerByID(ctx, managerID)
}

func (s *SalesService) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	return s.managerRepo.ListManagers(ctx)
}

// UpdateManager applies field changes; a non-nil Channels slice replaces the
// stored assignments wholesale.
func (s *SalesService) UpdateManager(ctx context.Context, managerID string, req dto.UpdateManagerRequest, updaterUserID string) (*domain.Manager, error) {
	manager, err := s.managerRepo.FindManagerByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		manager.Name = *req.Name
	}
	if req.Email != nil {
		manager.Email = *req.Email
	}
	if req.Phone != nil {
		manager.Phone = *req.Phone
	}
	if req.Country != nil {
		manager.Country = *req.Country
	}
	if req.Region != nil {
		manager.Region = *req.Region
	}
	if req.Channels != nil {
		manager.Channels = toChannelTypes(req.Channels)
	}
	manager.Touch(updaterUserID, time.Now())

	if err := s.managerRepo.UpdateManager(ctx, *manager); err != nil {
		return nil, err
	}
	return manager, nil
}

func (s *SalesService) DeleteManager(ctx context.Context, managerID string) error {
	return s.managerRepo.DeleteManager(ctx, managerID)
}

func (s *SalesService) CreateSalesRep(ctx context.Context, req dto.CreateSalesRepRequest, creatorUserID string) (*domain.SalesRep, error) {
	if req.ManagerID != "" {
		if _, err := s.managerRepo.FindManagerByID(ctx, req.ManagerID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	rep := domain.SalesRep{
		RepID:       uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		Region:      req.Region,
		ManagerID:   req.ManagerID,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.repRepo.SaveSalesRep(ctx, rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (s *SalesService) GetSalesRepByID(ctx context.Context, repID string) (*domain.SalesRep, error) {
	return s.repRepo.FindSalesRepByID(ctx, repID)
}

func (s *SalesService) ListSalesReps(ctx context.Context, country string) ([]domain.SalesRep, error) {
	return s.repRepo.ListSalesReps(ctx, country)
}

func (s *SalesService) UpdateSalesRep(ctx context.Context, repID string, req dto.UpdateSalesRepRequest, updaterUserID string) (*domain.SalesRep, error) {
	rep, err := s.repRepo.FindSalesRepByID(ctx, repID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		rep.Name = *req.Name
	}
	if req.Email != nil {
		rep.Email = *req.Email
	}
	if req.Phone != nil {
		rep.Phone = *req.Phone
	}
	if req.Country != nil {
		rep.Country = *req.Country
	}
	if req.Region != nil {
		rep.Region = *req.Region
	}
	if req.ManagerID != nil {
		if *req.ManagerID != "" {
			if _, err := s.managerRepo.FindManagerByID(ctx, *req.ManagerID); err != nil {
				return nil, err
			}
		}
		rep.ManagerID = *req.ManagerID
	}
	rep.Touch(updaterUserID, time.Now())

	if err := s.repRepo.UpdateSalesRep(ctx, *rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *SalesService) DeleteSalesRep(ctx context.Context, repID string) error {
	return s.repRepo.DeleteSalesRep(ctx, repID)
}

func (s *SalesService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	if req.RepID != "" {
		if _, err := s.repRepo.FindSalesRepByID(ctx, req.RepID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		Name:        req.Name,
		Country:     req.Country,
		Region:      req.Region,
		Address:     req.Address,
		RepID:       req.RepID,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *SalesService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *SalesService) ListClients(ctx context.Context, country string) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, country)
}

func (s *SalesService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.Region != nil {
		client.Region = *req.Region
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.RepID != nil {
		if *req.RepID != "" {
			if _, err := s.repRepo.FindSalesRepByID(ctx, *req.RepID); err != nil {
				return nil, err
			}
		}
		client.RepID = *req.RepID
	}
	client.Touch(updaterUserID, time.Now())

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *SalesService) DeleteClient(ctx context.Context, clientID string) error {
	return s.clientRepo.DeleteClient(ctx, clientID)
}
