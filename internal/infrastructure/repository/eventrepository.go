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

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(gdb *gorm.DB) content.EventRepository {
	return &EventRepository{db: gdb}
}

func (r *EventRepository) Create(ctx context.Context, event *content.Event) error {
	model := eventToModel(event)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	event.ID = model.ID
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*content.Event, error) {
	var model models.EventModel
	err := db.FromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return eventToDomain(&model), nil
}

func (r *EventRepository) ListByProject(ctx context.Context, projectID uint) ([]*content.Event, error) {
	var eventModels []models.EventModel
	err := db.FromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("start_time ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return eventsToDomain(eventModels), nil
}

// ListByUserBetween backs the cross-project calendar view: events from every
// project the user owns that overlap [start, end].
func (r *EventRepository) ListByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]*content.Event, error) {
	var eventModels []models.EventModel
	err := db.FromContext(ctx, r.db).
		Joins("JOIN projects ON projects.id = events.project_id").
		Where("projects.user_id = ? AND events.start_time <= ? AND events.end_time >= ?", userID, end, start).
		Order("events.start_time ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events for user: %w", err)
	}
	return eventsToDomain(eventModels), nil
}

func (r *EventRepository) Update(ctx context.Context, event *content.Event) error {
	result := db.FromContext(ctx, r.db).Save(eventToModel(event))
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("event not found")
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	result := db.FromContext(ctx, r.db).Where("id = ?", id).Delete(&models.EventModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("event not found")
	}
	return nil
}

func eventsToDomain(eventModels []models.EventModel) []*content.Event {
	events := make([]*content.Event, len(eventModels))
	for i := range eventModels {
		events[i] = eventToDomain(&eventModels[i])
	}
	return events
}

func eventToModel(e *content.Event) *models.EventModel {
	return &models.EventModel{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Name:        e.Name,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		CreatedAt:   e.CreatedAt,
	}
}

func eventToDomain(m *models.EventModel) *content.Event {
	return &content.Event{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		CreatedAt:   m.CreatedAt,
	}
}
