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

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(gdb *gorm.DB) content.TranslationRepository {
	return &TranslationRepository{db: gdb}
}

func (r *TranslationRepository) Create(ctx context.Context, translation *content.Translation) error {
	model := translationToModel(translation)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create translation: %w", err)
	}
	translation.ID = model.ID
	return nil
}

func (r *TranslationRepository) GetByID(ctx context.Context, id uint) (*content.Translation, error) {
	var model models.TranslationModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("translation not found")
		}
		return nil, fmt.Errorf("failed to get translation: %w", err)
	}
	return translationToDomain(&model), nil
}

func (r *TranslationRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.Translation, error) {
	var translationModels []models.TranslationModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&translationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	translations := make([]*content.Translation, len(translationModels))
	for i := range translationModels {
		translations[i] = translationToDomain(&translationModels[i])
	}
	return translations, nil
}

func (r *TranslationRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Translation, error) {
	var translationModels []models.TranslationModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = translations.page_id").
		Where("pages.project_id = ?", projectID).
		Order("translations.created_at ASC").
		Find(&translationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list translations by project: %w", err)
	}
	translations := make([]*content.Translation, len(translationModels))
	for i := range translationModels {
		translations[i] = translationToDomain(&translationModels[i])
	}
	return translations, nil
}

func (r *TranslationRepository) Update(ctx context.Context, translation *content.Translation) error {
	result := db.FromContext(ctx, r.db).Save(translationToModel(translation))
	if result.Error != nil {
		return fmt.Errorf("failed to update translation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("translation not found")
	}
	return nil
}

func (r *TranslationRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.TranslationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete translation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("translation not found")
	}
	return nil
}

func translationToModel(t *content.Translation) *models.TranslationModel {
	return &models.TranslationModel{
		ID:           t.ID,
		PageID:       t.PageID,
		Name:         t.Name,
		Language:     t.Language,
		SourceText:   t.SourceText,
		Translated:   t.Translated,
		CreatedAt:    t.CreatedAt,
		LastEditTime: t.LastEditTime,
	}
}

func translationToDomain(m *models.TranslationModel) *content.Translation {
	return &content.Translation{
		ID:           m.ID,
		PageID:       m.PageID,
		Name:         m.Name,
		Language:     m.Language,
		SourceText:   m.SourceText,
		Translated:   m.Translated,
		CreatedAt:    m.CreatedAt,
		LastEditTime: m.LastEditTime,
	}
}
