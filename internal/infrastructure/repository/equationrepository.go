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

type EquationRepository struct {
	db *gorm.DB
}

func NewEquationRepository(gdb *gorm.DB) content.EquationRepository {
	return &EquationRepository{db: gdb}
}

func (r *EquationRepository) Create(ctx context.Context, equation *content.Equation) error {
	model := equationToModel(equation)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create equation: %w", err)
	}
	equation.ID = model.ID
	return nil
}

func (r *EquationRepository) GetByID(ctx context.Context, id uint) (*content.Equation, error) {
	var model models.EquationModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("equation not found")
		}
		return nil, fmt.Errorf("failed to get equation: %w", err)
	}
	return equationToDomain(&model), nil
}

func (r *EquationRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.Equation, error) {
	var equationModels []models.EquationModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&equationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equations: %w", err)
	}
	equations := make([]*content.Equation, len(equationModels))
	for i := range equationModels {
		equations[i] = equationToDomain(&equationModels[i])
	}
	return equations, nil
}

// ListByProject reaches across every page of the project in one joined query.
func (r *EquationRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Equation, error) {
	var equationModels []models.EquationModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = equations.page_id").
		Where("pages.project_id = ?", projectID).
		Order("equations.created_at ASC").
		Find(&equationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equations by project: %w", err)
	}
	equations := make([]*content.Equation, len(equationModels))
	for i := range equationModels {
		equations[i] = equationToDomain(&equationModels[i])
	}
	return equations, nil
}

func (r *EquationRepository) Update(ctx context.Context, equation *content.Equation) error {
	result := db.FromContext(ctx, r.db).Save(equationToModel(equation))
	if result.Error != nil {
		return fmt.Errorf("failed to update equation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("equation not found")
	}
	return nil
}

func (r *EquationRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.EquationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete equation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("equation not found")
	}
	return nil
}

func equationToModel(e *content.Equation) *models.EquationModel {
	return &models.EquationModel{
		ID:           e.ID,
		PageID:       e.PageID,
		Name:         e.Name,
		Description:  e.Description,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
		LastEditTime: e.LastEditTime,
	}
}

func equationToDomain(m *models.EquationModel) *content.Equation {
	return &content.Equation{
		ID:           m.ID,
		PageID:       m.PageID,
		Name:         m.Name,
		Description:  m.Description,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
