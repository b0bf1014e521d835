package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(gdb *gorm.DB) session.Repository {
	return &SessionRepository{db: gdb}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	model := sessionToModel(s)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	s.ID = model.ID
	return nil
}

// GetByToken returns (nil, nil) for an unknown token: verification fails
// closed on it without treating it as an infrastructure error. Expiry and
// the active flag are evaluated by the caller, not filtered here.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	var model models.SessionModel
	err := db.FromContext(ctx, r.db).Where("token = ?", token).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return sessionToDomain(&model), nil
}

func (r *SessionRepository) GetByUserID(ctx context.Context, userID uint) ([]*session.Session, error) {
	var sessionModels []models.SessionModel
	err := db.FromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions by user ID: %w", err)
	}

	sessions := make([]*session.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = sessionToDomain(&sessionModels[i])
	}
	return sessions, nil
}

// Deactivate flips the active flag. Idempotent: zero matched rows is not an
// error, and a second call leaves the flag false.
func (r *SessionRepository) Deactivate(ctx context.Context, token string) error {
	err := db.FromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("token = ?", token).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}

func sessionToModel(s *session.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Token:     s.Token,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IPAddress: s.IPAddress,
		IsActive:  s.IsActive,
	}
}

func sessionToDomain(m *models.SessionModel) *session.Session {
	return &session.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		IPAddress: m.IPAddress,
		IsActive:  m.IsActive,
	}
}
