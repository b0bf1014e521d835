package content

import (
	"context"
	"strings"
	"time"
)

type Snippet struct {
	ID           uint
	PageID       uint
	Name         string
	Description  string
	Language     string
	Code         string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewSnippet(pageID uint, name, description, language, code string) (*Snippet, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Snippet{
		PageID:       pageID,
		Name:         strings.TrimSpace(name),
		Description:  description,
		Language:     language,
		Code:         code,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

func (s *Snippet) Edit(name, description, language, code string) error {
	if err := requireName(name); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(name)
	s.Description = description
	s.Language = language
	s.Code = code
	s.LastEditTime = time.Now().UTC()
	return nil
}

type SnippetRepository interface {
	Create(ctx context.Context, snippet *Snippet) error
	GetByID(ctx context.Context, id uint) (*Snippet, error)
	ListByPage(ctx context.Context, pageID uint) ([]*Snippet, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Snippet, error)
	Update(ctx context.Context, snippet *Snippet) error
	Delete(ctx context.Context, id uint) error
}
