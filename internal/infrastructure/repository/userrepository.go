// Package repository implements the domain persistence contracts on GORM.
// Every query routes through db.FromContext so it joins the request's
// transaction when one is open.
package repository

import (
	"errors"
	"fmt"

	"context"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	apperrors "github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gdb *gorm.DB) user.Repository {
	return &UserRepository{db: gdb}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user name is already taken")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = model.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*user.User, error) {
	var model models.UserModel
	err := db.FromContext(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result := db.FromContext(ctx, r.db).Save(userToModel(u))
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Preferences:  u.Preferences,
		CreatedAt:    u.CreatedAt,
	}
}

func userToDomain(m *models.UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Preferences:  m.Preferences,
		CreatedAt:    m.CreatedAt,
	}
}
