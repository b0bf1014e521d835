package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Todo belongs directly to a project, not to a page.
type Todo struct {
	ID          uint
	ProjectID   uint
	Description string
	DueTime     *time.Time
	Completed   bool
	CreatedAt   time.Time
}

func NewTodo(projectID uint, description string, dueTime *time.Time) (*Todo, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	return &Todo{
		ProjectID:   projectID,
		Description: strings.TrimSpace(description),
		DueTime:     dueTime,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (t *Todo) Edit(description string, dueTime *time.Time, completed bool) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	t.Description = strings.TrimSpace(description)
	t.DueTime = dueTime
	t.Completed = completed
	return nil
}

type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) error
	GetByID(ctx context.Context, id uint) (*Todo, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Todo, error)
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, id uint) error
}
