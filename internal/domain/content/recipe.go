package content

import (
	"context"
	"strings"
	"time"
)

type Recipe struct {
	ID           uint
	PageID       uint
	Name         string
	Description  string
	Content      string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewRecipe(pageID uint, name, description, body string) (*Recipe, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Recipe{
		PageID:       pageID,
		Name:         strings.TrimSpace(name),
		Description:  description,
		Content:      body,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

func (r *Recipe) Edit(name, description, body string) error {
	if err := requireName(name); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(name)
	r.Description = description
	r.Content = body
	r.LastEditTime = time.Now().UTC()
	return nil
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id uint) (*Recipe, error)
	ListByPage(ctx context.Context, pageID uint) ([]*Recipe, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Recipe, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id uint) error
}
