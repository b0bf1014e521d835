package models

import "time"

// SessionModel rows are append-only from the application's point of view:
// logout flips IsActive, nothing ever deletes them.
type SessionModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Token     string    `gorm:"size:128;not null;uniqueIndex"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null;index"`
	IPAddress string    `gorm:"size:45"`
	IsActive  bool      `gorm:"not null;default:true"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
