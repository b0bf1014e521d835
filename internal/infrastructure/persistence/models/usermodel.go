// Package models holds the GORM persistence models. The authoritative
// schema lives in the goose migration scripts; these structs mirror it for
// query building and for AutoMigrate in tests.
package models

import "time"

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Preferences  string `gorm:"type:text;not null;default:'{}'"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
