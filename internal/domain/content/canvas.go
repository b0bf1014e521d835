package content

import (
	"context"
	"strings"
	"time"
)

type Canvas struct {
	ID           uint
	PageID       uint
	Name         string
	Description  string
	// Content is the serialized drawing payload; the server treats it as opaque.
	Content      string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewCanvas(pageID uint, name, description, body string) (*Canvas, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Canvas{
		PageID:       pageID,
		Name:         strings.TrimSpace(name),
		Description:  description,
		Content:      body,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

func (c *Canvas) Edit(name, description, body string) error {
	if err := requireName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.Content = body
	c.LastEditTime = time.Now().UTC()
	return nil
}

type CanvasRepository interface {
	Create(ctx context.Context, canvas *Canvas) error
	GetByID(ctx context.Context, id uint) (*Canvas, error)
	ListByPage(ctx context.Context, pageID uint) ([]*Canvas, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Canvas, error)
	Update(ctx context.Context, canvas *Canvas) error
	Delete(ctx context.Context, id uint) error
}
