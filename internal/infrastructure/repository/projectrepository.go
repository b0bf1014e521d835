package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/workspace"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	apperrors "github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(gdb *gorm.DB) workspace.ProjectRepository {
	return &ProjectRepository{db: gdb}
}

func (r *ProjectRepository) Create(ctx context.Context, project *workspace.Project) error {
	model := projectToModel(project)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = model.ID
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*workspace.Project, error) {
	var model models.ProjectModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return projectToDomain(&model), nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID uint) ([]*workspace.Project, error) {
	var projectModels []models.ProjectModel
	err := db.FromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&projectModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*workspace.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectToDomain(&projectModels[i])
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *workspace.Project) error {
	result := db.FromContext(ctx, r.db).Save(projectToModel(project))
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.ProjectModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("project not found")
	}
	return nil
}

func projectToModel(p *workspace.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		LastEditTime: p.LastEditTime,
	}
}

func projectToDomain(m *models.ProjectModel) *workspace.Project {
	return &workspace.Project{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
