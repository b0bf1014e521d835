// Package workspace defines projects and pages, the two levels of the
// ownership chain every access decision walks: resource → page → project →
// owning user.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID           uint
	UserID       uint
	Name         string
	Description  string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewProject(userID uint, name, description string) (*Project, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	now := time.Now().UTC()
	return &Project{
		UserID:       userID,
		Name:         name,
		Description:  description,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

// Rename updates the project's name and description.
func (p *Project) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	p.Name = name
	p.Description = description
	p.LastEditTime = time.Now().UTC()
	return nil
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListByUser(ctx context.Context, userID uint) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uint) error
}
