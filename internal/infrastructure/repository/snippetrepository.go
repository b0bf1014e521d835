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

type SnippetRepository struct {
	db *gorm.DB
}

func NewSnippetRepository(gdb *gorm.DB) content.SnippetRepository {
	return &SnippetRepository{db: gdb}
}

func (r *SnippetRepository) Create(ctx context.Context, snippet *content.Snippet) error {
	model := snippetToModel(snippet)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create snippet: %w", err)
	}
	snippet.ID = model.ID
	return nil
}

func (r *SnippetRepository) GetByID(ctx context.Context, id uint) (*content.Snippet, error) {
	var model models.SnippetModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("snippet not found")
		}
		return nil, fmt.Errorf("failed to get snippet: %w", err)
	}
	return snippetToDomain(&model), nil
}

func (r *SnippetRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.Snippet, error) {
	var snippetModels []models.SnippetModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&snippetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	snippets := make([]*content.Snippet, len(snippetModels))
	for i := range snippetModels {
		snippets[i] = snippetToDomain(&snippetModels[i])
	}
	return snippets, nil
}

func (r *SnippetRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Snippet, error) {
	var snippetModels []models.SnippetModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = code_snippets.page_id").
		Where("pages.project_id = ?", projectID).
		Order("code_snippets.created_at ASC").
		Find(&snippetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets by project: %w", err)
	}
	snippets := make([]*content.Snippet, len(snippetModels))
	for i := range snippetModels {
		snippets[i] = snippetToDomain(&snippetModels[i])
	}
	return snippets, nil
}

func (r *SnippetRepository) Update(ctx context.Context, snippet *content.Snippet) error {
	result := db.FromContext(ctx, r.db).Save(snippetToModel(snippet))
	if result.Error != nil {
		return fmt.Errorf("failed to update snippet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("snippet not found")
	}
	return nil
}

func (r *SnippetRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.SnippetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete snippet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("snippet not found")
	}
	return nil
}

func snippetToModel(s *content.Snippet) *models.SnippetModel {
	return &models.SnippetModel{
		ID:           s.ID,
		PageID:       s.PageID,
		Name:         s.Name,
		Description:  s.Description,
		Language:     s.Language,
		Code:         s.Code,
		CreatedAt:    s.CreatedAt,
		LastEditTime: s.LastEditTime,
	}
}

func snippetToDomain(m *models.SnippetModel) *content.Snippet {
	return &content.Snippet{
		ID:           m.ID,
		PageID:       m.PageID,
		Name:         m.Name,
		Description:  m.Description,
		Language:     m.Language,
		Code:         m.Code,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
