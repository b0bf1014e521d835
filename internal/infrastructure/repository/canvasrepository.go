package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	apperrors "github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

type CanvasRepository struct {
	db *gorm.DB
}

func NewCanvasRepository(gdb *gorm.DB) content.CanvasRepository {
	return &CanvasRepository{db: gdb}
}

func (r *CanvasRepository) Create(ctx context.Context, canvas *content.Canvas) error {
	model := canvasToModel(canvas)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}
	canvas.ID = model.ID
	return nil
}

func (r *CanvasRepository) GetByID(ctx context.Context, id uint) (*content.Canvas, error) {
	var model models.CanvasModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("canvas not found")
		}
		return nil, fmt.Errorf("failed to get canvas: %w", err)
	}
	return canvasToDomain(&model), nil
}

func (r *CanvasRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.Canvas, error) {
	var canvasModels []models.CanvasModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&canvasModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list canvases: %w", err)
	}
	canvases := make([]*content.Canvas, len(canvasModels))
	for i := range canvasModels {
		canvases[i] = canvasToDomain(&canvasModels[i])
	}
	return canvases, nil
}

func (r *CanvasRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Canvas, error) {
	var canvasModels []models.CanvasModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = canvases.page_id").
		Where("pages.project_id = ?", projectID).
		Order("canvases.created_at ASC").
		Find(&canvasModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list canvases by project: %w", err)
	}
	canvases := make([]*content.Canvas, len(canvasModels))
	for i := range canvasModels {
		canvases[i] = canvasToDomain(&canvasModels[i])
	}
	return canvases, nil
}

func (r *CanvasRepository) Update(ctx context.Context, canvas *content.Canvas) error {
	result := db.FromContext(ctx, r.db).Save(canvasToModel(canvas))
	if result.Error != nil {
		return fmt.Errorf("failed to update canvas: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("canvas not found")
	}
	return nil
}

func (r *CanvasRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CanvasModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete canvas: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("canvas not found")
	}
	return nil
}

func canvasToModel(c *content.Canvas) *models.CanvasModel {
	return &models.CanvasModel{
		ID:           c.ID,
		PageID:       c.PageID,
		Name:         c.Name,
		Description:  c.Description,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
		LastEditTime: c.LastEditTime,
	}
}

func canvasToDomain(m *models.CanvasModel) *content.Canvas {
	return &content.Canvas{
		ID:           m.ID,
		PageID:       m.PageID,
		Name:         m.Name,
		Description:  m.Description,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
