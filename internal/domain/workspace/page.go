package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Page struct {
	ID           uint
	ProjectID    uint
	Name         string
	Content      string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewPage(projectID uint, name, content string) (*Page, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("page name is required")
	}

	now := time.Now().UTC()
	return &Page{
		ProjectID:    projectID,
		Name:         name,
		Content:      content,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

// Edit replaces the page's name and markdown body.
func (p *Page) Edit(name, content string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("page name is required")
	}
	p.Name = name
	p.Content = content
	p.LastEditTime = time.Now().UTC()
	return nil
}

type PageRepository interface {
	Create(ctx context.Context, page *Page) error
	GetByID(ctx context.Context, id uint) (*Page, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Page, error)
	Update(ctx context.Context, page *Page) error
	Delete(ctx context.Context, id uint) error
}
