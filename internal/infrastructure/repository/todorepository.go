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

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(gdb *gorm.DB) content.TodoRepository {
	return &TodoRepository{db: gdb}
}

func (r *TodoRepository) Create(ctx context.Context, todo *content.Todo) error {
	model := todoToModel(todo)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	todo.ID = model.ID
	return nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uint) (*content.Todo, error) {
	var model models.TodoModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("todo not found")
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	return todoToDomain(&model), nil
}

func (r *TodoRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Todo, error) {
	var todoModels []models.TodoModel
	err := db.FromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&todoModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	todos := make([]*content.Todo, len(todoModels))
	for i := range todoModels {
		todos[i] = todoToDomain(&todoModels[i])
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *content.Todo) error {
	// Save skips zero-valued fields for partial structs; Select forces the
	// completed flag through even when it flips back to false.
	result := db.FromContext(ctx, r.db).
		Model(&models.TodoModel{}).
		Where("id = ?", todo.ID).
		Select("Description", "DueTime", "Completed").
		Updates(todoToModel(todo))
	if result.Error != nil {
		return fmt.Errorf("failed to update todo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("todo not found")
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.TodoModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete todo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("todo not found")
	}
	return nil
}

func todoToModel(t *content.Todo) *models.TodoModel {
	return &models.TodoModel{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Description: t.Description,
		DueTime:     t.DueTime,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func todoToDomain(m *models.TodoModel) *content.Todo {
	return &content.Todo{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Description: m.Description,
		DueTime:     m.DueTime,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
	}
}
