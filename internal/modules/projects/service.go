package projects

import (
	"context"
	"errors"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"gorm.io/gorm"
)

type Service struct {
	projects ProjectRepository
	clients  ClientReader
}

func NewService(projects ProjectRepository, clients ClientReader) *Service {
	return &Service{projects: projects, clients: clients}
}

func (s *Service) List(ctx context.Context, actor *domain.Actor) ([]domain.Project, error) {
	return s.projects.List(ctx, scope.Projects(actor))
}

func (s *Service) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Project, error) {
	p, err := s.projects.GetScoped(ctx, id, scope.Projects(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create attaches the project to a client the actor can see. The department
// defaults to the client's department so the two records stay in one scope.
func (s *Service) Create(ctx context.Context, actor *domain.Actor, req CreateProjectRequest) (*domain.Project, error) {
	client, err := s.clients.GetScoped(ctx, req.ClientID, scope.Clients(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownClient
		}
		return nil, err
	}

	departmentID := client.DepartmentID
	if req.DepartmentID != nil {
		departmentID = *req.DepartmentID
	}
	if err := scope.CheckDepartmentWrite(actor, departmentID); err != nil {
		return nil, err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrValidation
	}

	createdBy := actor.ID
	p := &domain.Project{
		Name:         req.Name,
		Description:  req.Description,
		ClientID:     client.ID,
		DepartmentID: departmentID,
		Status:       domain.ProjectActive,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		CreatedBy:    &createdBy,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, actor *domain.Actor, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := scope.CheckDepartmentWrite(actor, p.DepartmentID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		switch status {
		case domain.ProjectActive, domain.ProjectOnHold, domain.ProjectCompleted:
			p.Status = status
		default:
			return nil, ErrValidation
		}
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = req.EndDate
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return nil, ErrValidation
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
