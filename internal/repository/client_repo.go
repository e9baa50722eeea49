package repository

import (
	"context"
	"strings"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex:idx_clients_email"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	DepartmentID int64     `gorm:"column:department_id;index"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedBy    *int64    `gorm:"column:created_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	var phone, address string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Address != nil {
		address = *m.Address
	}

	return &domain.Client{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        phone,
		Address:      address,
		DepartmentID: m.DepartmentID,
		IsActive:     m.IsActive,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toClientModel(c *domain.Client) clientModel {
	var phone, address *string
	if c.Phone != "" {
		v := c.Phone
		phone = &v
	}
	if c.Address != "" {
		v := c.Address
		address = &v
	}

	return clientModel{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        phone,
		Address:      address,
		DepartmentID: c.DepartmentID,
		IsActive:     c.IsActive,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).Scopes(sc).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Client, error) {
	var ms []clientModel
	if err := r.db.WithContext(ctx).Scopes(sc).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Client, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}
