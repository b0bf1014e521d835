// Package content defines the typed sub-resources pages and projects hold.
// Equations, snippets, canvases, recipes, translations, and files belong to
// a page; todos and events belong directly to a project. None of them carry
// their own access rules: authorization always resolves through the owning
// page or project.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Equation struct {
	ID           uint
	PageID       uint
	Name         string
	Description  string
	Content      string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewEquation(pageID uint, name, description, body string) (*Equation, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Equation{
		PageID:       pageID,
		Name:         strings.TrimSpace(name),
		Description:  description,
		Content:      body,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

func (e *Equation) Edit(name, description, body string) error {
	if err := requireName(name); err != nil {
		return err
	}
	e.Name = strings.TrimSpace(name)
	e.Description = description
	e.Content = body
	e.LastEditTime = time.Now().UTC()
	return nil
}

type EquationRepository interface {
	Create(ctx context.Context, equation *Equation) error
	GetByID(ctx context.Context, id uint) (*Equation, error)
	ListByPage(ctx context.Context, pageID uint) ([]*Equation, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Equation, error)
	Update(ctx context.Context, equation *Equation) error
	Delete(ctx context.Context, id uint) error
}

func requirePage(pageID uint, name string) error {
	if pageID == 0 {
		return fmt.Errorf("page ID is required")
	}
	return requireName(name)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
