package clients

import (
	"context"
	"errors"

	"studiodesk/internal/domain"
	"studiodesk/internal/scope"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) List(ctx context.Context, actor *domain.Actor) ([]domain.Client, error) {
	return s.clients.List(ctx, scope.Clients(actor))
}

func (s *Service) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Client, error) {
	c, err := s.clients.GetScoped(ctx, id, scope.Clients(actor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a client under a department the actor may write to. The
// department fixes the record's visibility scope.
func (s *Service) Create(ctx context.Context, actor *domain.Actor, req CreateClientRequest) (*domain.Client, error) {
	departmentID := actor.FirstDepartment()
	if req.DepartmentID != nil {
		departmentID = *req.DepartmentID
	}
	if departmentID == 0 {
		return nil, ErrValidation
	}
	if err := scope.CheckDepartmentWrite(actor, departmentID); err != nil {
		return nil, err
	}

	if _, err := s.clients.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	createdBy := actor.ID
	c := &domain.Client{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DepartmentID: departmentID,
		IsActive:     true,
		CreatedBy:    &createdBy,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, mapEmailConflict(err)
	}
	return c, nil
}

// Update merges the provided fields. The department write guard runs against
// the record's resulting department, independently of read scoping: moving a
// client into a department the actor cannot write to is rejected even though
// the actor can see the record today.
func (s *Service) Update(ctx context.Context, actor *domain.Actor, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.DepartmentID != nil {
		c.DepartmentID = *req.DepartmentID
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := scope.CheckDepartmentWrite(actor, c.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, mapEmailConflict(err)
	}
	return c, nil
}

func mapEmailConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_clients_email" {
		return ErrEmailTaken
	}
	return err
}
