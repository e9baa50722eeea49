package admin

import (
	"context"
	"errors"
	"net"

	"studiodesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users       UserRepository
	departments DepartmentRepository
	ipBlocks    IPBlockStore
}

func NewService(users UserRepository, departments DepartmentRepository, ipBlocks IPBlockStore) *Service {
	return &Service{users: users, departments: departments, ipBlocks: ipBlocks}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	roles, err := parseRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	for _, deptID := range req.DepartmentIDs {
		if _, err := s.departments.GetByID(ctx, deptID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Name:          req.Name,
		Phone:         req.Phone,
		Roles:         roles,
		DepartmentIDs: req.DepartmentIDs,
		ClientID:      req.ClientID,
		IsActive:      true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Roles != nil {
		roles, err := parseRoles(req.Roles)
		if err != nil {
			return nil, err
		}
		u.Roles = roles
	}
	if req.DepartmentIDs != nil {
		for _, deptID := range req.DepartmentIDs {
			if _, err := s.departments.GetByID(ctx, deptID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrValidation
				}
				return nil, err
			}
		}
		u.DepartmentIDs = req.DepartmentIDs
	}
	if req.ClientID != nil {
		u.ClientID = req.ClientID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeactivateUser disables login without touching history rows keyed to the
// user.
func (s *Service) DeactivateUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, false)
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *Service) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*domain.Department, error) {
	d := &domain.Department{Name: req.Name}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) BlockIP(ctx context.Context, ip, reason string) error {
	if net.ParseIP(ip) == nil {
		return ErrValidation
	}
	return s.ipBlocks.Block(ctx, ip, reason)
}

func (s *Service) UnblockIP(ctx context.Context, ip string) error {
	if net.ParseIP(ip) == nil {
		return ErrValidation
	}
	return s.ipBlocks.Unblock(ctx, ip)
}

func parseRoles(raw []string) ([]domain.Role, error) {
	if len(raw) == 0 {
		return nil, ErrValidation
	}

	roles := make([]domain.Role, 0, len(raw))
	for _, r := range raw {
		role := domain.Role(r)
		switch role {
		case domain.RoleAdmin, domain.RoleMadmin, domain.RoleEngineer, domain.RoleStaff, domain.RoleClient:
			roles = append(roles, role)
		default:
			return nil, ErrUnknownRole
		}
	}
	return roles, nil
}
