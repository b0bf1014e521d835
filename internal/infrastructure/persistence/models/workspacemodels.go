package models

import "time"

type ProjectModel struct {
	ID           uint   `gorm:"primarykey"`
	UserID       uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (ProjectModel) TableName() string {
	return "projects"
}

type PageModel struct {
	ID           uint   `gorm:"primarykey"`
	ProjectID    uint   `gorm:"not null;index"`
	Name         string `gorm:"size:255;not null"`
	Content      string `gorm:"type:text"`
	CreatedAt    time.Time
	LastEditTime time.Time
}

func (PageModel) TableName() string {
	return "pages"
}
