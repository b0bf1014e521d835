package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Event belongs directly to a project, not to a page.
type Event struct {
	ID          uint
	ProjectID   uint
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
}

func NewEvent(projectID uint, name, description string, start, end time.Time) (*Event, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("event cannot end before it starts")
	}
	return &Event{
		ProjectID:   projectID,
		Name:        strings.TrimSpace(name),
		Description: description,
		StartTime:   start,
		EndTime:     end,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (e *Event) Edit(name, description string, start, end time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("event name is required")
	}
	if end.Before(start) {
		return fmt.Errorf("event cannot end before it starts")
	}
	e.Name = strings.TrimSpace(name)
	e.Description = description
	e.StartTime = start
	e.EndTime = end
	return nil
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Event, error)
	ListByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uint) error
}
