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

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(gdb *gorm.DB) content.RecipeRepository {
	return &RecipeRepository{db: gdb}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *content.Recipe) error {
	model := recipeToModel(recipe)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	recipe.ID = model.ID
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id uint) (*content.Recipe, error) {
	var model models.RecipeModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("recipe not found")
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipeToDomain(&model), nil
}

func (r *RecipeRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.Recipe, error) {
	var recipeModels []models.RecipeModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&recipeModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	recipes := make([]*content.Recipe, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = recipeToDomain(&recipeModels[i])
	}
	return recipes, nil
}

func (r *RecipeRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Recipe, error) {
	var recipeModels []models.RecipeModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = recipes.page_id").
		Where("pages.project_id = ?", projectID).
		Order("recipes.created_at ASC").
		Find(&recipeModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by project: %w", err)
	}
	recipes := make([]*content.Recipe, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = recipeToDomain(&recipeModels[i])
	}
	return recipes, nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *content.Recipe) error {
	result := db.FromContext(ctx, r.db).Save(recipeToModel(recipe))
	if result.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("recipe not found")
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.RecipeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("recipe not found")
	}
	return nil
}

func recipeToModel(rec *content.Recipe) *models.RecipeModel {
	return &models.RecipeModel{
		ID:           rec.ID,
		PageID:       rec.PageID,
		Name:         rec.Name,
		Description:  rec.Description,
		Content:      rec.Content,
		CreatedAt:    rec.CreatedAt,
		LastEditTime: rec.LastEditTime,
	}
}

func recipeToDomain(m *models.RecipeModel) *content.Recipe {
	return &content.Recipe{
		ID:           m.ID,
		PageID:       m.PageID,
		Name:         m.Name,
		Description:  m.Description,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
