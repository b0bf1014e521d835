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

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(gdb *gorm.DB) workspace.PageRepository {
	return &PageRepository{db: gdb}
}

func (r *PageRepository) Create(ctx context.Context, page *workspace.Page) error {
	model := pageToModel(page)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	page.ID = model.ID
	return nil
}

func (r *PageRepository) GetByID(ctx context.Context, id uint) (*workspace.Page, error) {
	var model models.PageModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("page not found")
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return pageToDomain(&model), nil
}

func (r *PageRepository) ListByProject(ctx context.Context, projectID uint) ([]*workspace.Page, error) {
	var pageModels []models.PageModel
	err := db.FromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&pageModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make([]*workspace.Page, len(pageModels))
	for i := range pageModels {
		pages[i] = pageToDomain(&pageModels[i])
	}
	return pages, nil
}

func (r *PageRepository) Update(ctx context.Context, page *workspace.Page) error {
	result := db.FromContext(ctx, r.db).Save(pageToModel(page))
	if result.Error != nil {
		return fmt.Errorf("failed to update page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("page not found")
	}
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.PageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("page not found")
	}
	return nil
}

func pageToModel(p *workspace.Page) *models.PageModel {
	return &models.PageModel{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		Name:         p.Name,
		Content:      p.Content,
		CreatedAt:    p.CreatedAt,
		LastEditTime: p.LastEditTime,
	}
}

func pageToDomain(m *models.PageModel) *workspace.Page {
	return &workspace.Page{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
