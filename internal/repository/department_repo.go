package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

type departmentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_departments_name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (departmentModel) TableName() string { return "departments" }

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var m departmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &domain.Department{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var ms []departmentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Department, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Department{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) error {
	m := departmentModel{ID: d.ID, Name: d.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	d.CreatedAt = m.CreatedAt
	return nil
}
