package repository

import (
	"context"
	"time"

	"studiodesk/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Name         string     `gorm:"column:name"`
	Description  *string    `gorm:"column:description"`
	ClientID     int64      `gorm:"column:client_id;index"`
	DepartmentID int64      `gorm:"column:department_id;index"`
	Status       string     `gorm:"column:status"`
	StartDate    *time.Time `gorm:"column:start_date"`
	EndDate      *time.Time `gorm:"column:end_date"`
	CreatedBy    *int64     `gorm:"column:created_by"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Project{
		ID:           m.ID,
		Name:         m.Name,
		Description:  description,
		ClientID:     m.ClientID,
		DepartmentID: m.DepartmentID,
		Status:       domain.ProjectStatus(m.Status),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	var description *string
	if p.Description != "" {
		v := p.Description
		description = &v
	}

	return projectModel{
		ID:           p.ID,
		Name:         p.Name,
		Description:  description,
		ClientID:     p.ClientID,
		DepartmentID: p.DepartmentID,
		Status:       string(p.Status),
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProject(m)
	return nil
}

func (r *ProjectRepository) GetScoped(ctx context.Context, id int64, sc func(*gorm.DB) *gorm.DB) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).Scopes(sc).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) List(ctx context.Context, sc func(*gorm.DB) *gorm.DB) ([]domain.Project, error) {
	var ms []projectModel
	if err := r.db.WithContext(ctx).Scopes(sc).Order("id desc").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainProject(m))
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProject(m)
	return nil
}
