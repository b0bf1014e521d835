package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	apperrors "github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(gdb *gorm.DB) content.FileRepository {
	return &FileRepository{db: gdb}
}

func (r *FileRepository) Create(ctx context.Context, file *content.File) error {
	model := fileToModel(file)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}
	file.ID = model.ID
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uint) (*content.File, error) {
	var model models.FileModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return fileToDomain(&model), nil
}

func (r *FileRepository) ListByPage(ctx context.Context, pageID uint) ([]*content.File, error) {
	var fileModels []models.FileModel
	err := db.FromContext(ctx, r.db).
		Where("page_id = ?", pageID).
		Order("created_at ASC").
		Find(&fileModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return filesToDomain(fileModels), nil
}

func (r *FileRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.File, error) {
	var fileModels []models.FileModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = files.page_id").
		Where("pages.project_id = ?", projectID).
		Order("files.created_at ASC").
		Find(&fileModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files by project: %w", err)
	}
	return filesToDomain(fileModels), nil
}

// ListCreatedByProject feeds the synthetic UPLOAD rows in history: files have
// no request log of their own, so CreatedAt is the upload event.
func (r *FileRepository) ListCreatedByProject(ctx context.Context, projectID uint, start, end time.Time) ([]*content.File, error) {
	var fileModels []models.FileModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = files.page_id").
		Where("pages.project_id = ? AND files.created_at BETWEEN ? AND ?", projectID, start, end).
		Order("files.created_at ASC").
		Find(&fileModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files created by project: %w", err)
	}
	return filesToDomain(fileModels), nil
}

func (r *FileRepository) ListCreatedByUser(ctx context.Context, userID uint, start, end time.Time) ([]*content.File, error) {
	var fileModels []models.FileModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN pages ON pages.id = files.page_id").
		Joins("JOIN projects ON projects.id = pages.project_id").
		Where("projects.user_id = ? AND files.created_at BETWEEN ? AND ?", userID, start, end).
		Order("files.created_at ASC").
		Find(&fileModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files created by user: %w", err)
	}
	return filesToDomain(fileModels), nil
}

func (r *FileRepository) CountByHash(ctx context.Context, hash string) (int64, error) {
	var count int64
	err := db.FromContext(ctx, r.db).
		Model(&models.FileModel{}).
		Where("hash = ?", hash).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count files by hash: %w", err)
	}
	return count, nil
}

func (r *FileRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.FileModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete file record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("file not found")
	}
	return nil
}

func filesToDomain(fileModels []models.FileModel) []*content.File {
	files := make([]*content.File, len(fileModels))
	for i := range fileModels {
		files[i] = fileToDomain(&fileModels[i])
	}
	return files
}

func fileToModel(f *content.File) *models.FileModel {
	return &models.FileModel{
		ID:        f.ID,
		PageID:    f.PageID,
		Name:      f.Name,
		Hash:      f.Hash,
		Size:      f.Size,
		CreatedAt: f.CreatedAt,
	}
}

func fileToDomain(m *models.FileModel) *content.File {
	return &content.File{
		ID:        m.ID,
		PageID:    m.PageID,
		Name:      m.Name,
		Hash:      m.Hash,
		Size:      m.Size,
		CreatedAt: m.CreatedAt,
	}
}
