package models

import "time"

type EquationModel struct {
	ID           uint   `gorm:"primarykey"`
	PageID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (EquationModel) TableName() string {
	return "equations"
}

type SnippetModel struct {
	ID           uint   `gorm:"primarykey"`
	PageID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Language     string `gorm:"size:50"`
	Code         string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (SnippetModel) TableName() string {
	return "code_snippets"
}

type CanvasModel struct {
	ID           uint   `gorm:"primarykey"`
	PageID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (CanvasModel) TableName() string {
	return "canvases"
}

type RecipeModel struct {
	ID           uint   `gorm:"primarykey"`
	PageID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (RecipeModel) TableName() string {
	return "recipes"
}

type TranslationModel struct {
	ID           uint   `gorm:"primarykey"`
	PageID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Language     string `gorm:"size:50"`
	SourceText   string `gorm:"type:text"`
	Translated   string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (TranslationModel) TableName() string {
	return "translations"
}

type FileModel struct {
	ID        uint   `gorm:"primarykey"`
	PageID    uint   `gorm:"not null;index"`
	Name      string `gorm:"size:255;not null"`
	Hash      string `gorm:"size:64;not null;index"`
	Size      int64  `gorm:"not null"`
	CreatedAt time.Time
}

func (FileModel) TableName() string {
	return "files"
}

type TodoModel struct {
	ID          uint   `gorm:"primarykey"`
	ProjectID   uint   `gorm:"not null;index"`
	Description string `gorm:"type:text;not null"`
	DueTime     *time.Time
	Completed   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (TodoModel) TableName() string {
	return "todos"
}

type EventModel struct {
	ID          uint   `gorm:"primarykey"`
	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	StartTime   time.Time `gorm:"not null;index"`
	EndTime     time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (EventModel) TableName() string {
	return "events"
}
