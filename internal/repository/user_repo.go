package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex:idx_users_username"`
	Email        string    `gorm:"column:email;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	Phone        *string   `gorm:"column:phone"`
	ClientID     *int64    `gorm:"column:client_id"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type userRoleModel struct {
	UserID int64  `gorm:"column:user_id;primaryKey"`
	Role   string `gorm:"column:role;primaryKey"`
}

func (userRoleModel) TableName() string { return "user_roles" }

// userDepartmentModel is the assignment table joining madmin/engineer users
// to the departments they may see.
type userDepartmentModel struct {
	UserID       int64 `gorm:"column:user_id;primaryKey"`
	DepartmentID int64 `gorm:"column:department_id;primaryKey"`
}

func (userDepartmentModel) TableName() string { return "user_departments" }

func toDomainUser(m userModel, roles []userRoleModel, depts []userDepartmentModel) *domain.User {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	u := &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Phone:        phone,
		ClientID:     m.ClientID,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, r := range roles {
		u.Roles = append(u.Roles, domain.Role(r.Role))
	}
	for _, d := range depts {
		u.DepartmentIDs = append(u.DepartmentIDs, d.DepartmentID)
	}
	return u
}

func (r *UserRepository) load(ctx context.Context, m userModel) (*domain.User, error) {
	var roles []userRoleModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", m.ID).Find(&roles).Error; err != nil {
		return nil, err
	}
	var depts []userDepartmentModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", m.ID).Order("department_id").Find(&depts).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m, roles, depts), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return r.load(ctx, m)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, err
	}
	return r.load(ctx, m)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		u, err := r.load(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// Create inserts the user together with its role and department assignments.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := userModel{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			ClientID:     u.ClientID,
			IsActive:     u.IsActive,
		}
		if u.Phone != "" {
			v := u.Phone
			m.Phone = &v
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		u.ID = m.ID
		u.CreatedAt = m.CreatedAt
		u.UpdatedAt = m.UpdatedAt

		for _, role := range u.Roles {
			if err := tx.Create(&userRoleModel{UserID: m.ID, Role: string(role)}).Error; err != nil {
				return err
			}
		}
		for _, dept := range u.DepartmentIDs {
			if err := tx.Create(&userDepartmentModel{UserID: m.ID, DepartmentID: dept}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the user row and replaces role/department assignments.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := userModel{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			ClientID:     u.ClientID,
			IsActive:     u.IsActive,
			CreatedAt:    u.CreatedAt,
		}
		if u.Phone != "" {
			v := u.Phone
			m.Phone = &v
		}
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", u.ID).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		for _, role := range u.Roles {
			if err := tx.Create(&userRoleModel{UserID: u.ID, Role: string(role)}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", u.ID).Delete(&userDepartmentModel{}).Error; err != nil {
			return err
		}
		for _, dept := range u.DepartmentIDs {
			if err := tx.Create(&userDepartmentModel{UserID: u.ID, DepartmentID: dept}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
