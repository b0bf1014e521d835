package content

import (
	"context"
	"strings"
	"time"
)

type Translation struct {
	ID           uint
	PageID       uint
	Name         string
	Language     string
	SourceText   string
	Translated   string
	CreatedAt    time.Time
	LastEditTime time.Time
}

func NewTranslation(pageID uint, name, language, sourceText, translated string) (*Translation, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Translation{
		PageID:       pageID,
		Name:         strings.TrimSpace(name),
		Language:     language,
		SourceText:   sourceText,
		Translated:   translated,
		CreatedAt:    now,
		LastEditTime: now,
	}, nil
}

func (t *Translation) Edit(name, language, sourceText, translated string) error {
	if err := requireName(name); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(name)
	t.Language = language
	t.SourceText = sourceText
	t.Translated = translated
	t.LastEditTime = time.Now().UTC()
	return nil
}

type TranslationRepository interface {
	Create(ctx context.Context, translation *Translation) error
	GetByID(ctx context.Context, id uint) (*Translation, error)
	ListByPage(ctx context.Context, pageID uint) ([]*Translation, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Translation, error)
	Update(ctx context.Context, translation *Translation) error
	Delete(ctx context.Context, id uint) error
}
