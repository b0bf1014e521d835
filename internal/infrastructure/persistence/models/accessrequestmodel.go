package models

import "time"

// AccessRequestModel is the append-only access log. SessionID is nullable:
// denials caused by an invalid session have no actor to attribute.
type AccessRequestModel struct {
	ID            uint   `gorm:"primarykey"`
	SessionID     *uint  `gorm:"index"`
	ResourceID    uint   `gorm:"not null;index:idx_access_resource"`
	ResourceKind  string `gorm:"size:20;not null;index:idx_access_resource"`
	AccessGranted bool   `gorm:"not null"`
	Action        string `gorm:"size:10;not null"`
	AccessTime    time.Time `gorm:"not null;index"`
}

func (AccessRequestModel) TableName() string {
	return "access_requests"
}
