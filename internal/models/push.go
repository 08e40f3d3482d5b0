// internal/models/push.go
package models

import "time"

// PushToken is a registered mobile device. Tokens rejected by the push
// provider as unregistered are deactivated, not deleted.
type PushToken struct {
	BaseModel
	Token      string         `json:"token" gorm:"uniqueIndex;type:text;not null"`
	Platform   DevicePlatform `json:"platform" gorm:"type:varchar(10);default:'android'"`
	DeviceName string         `json:"deviceName" gorm:"size:150;default:'Unknown'"`
	IsActive   bool           `json:"isActive" gorm:"default:true;index"`
}

// Notification is a history record of a broadcast push send.
type Notification struct {
	BaseModel
	Title       string           `json:"title" gorm:"size:255;not null"`
	Body        string           `json:"body" gorm:"type:text;not null"`
	Type        NotificationType `json:"type" gorm:"type:varchar(20);default:'general'"`
	SentCount   int              `json:"sentCount" gorm:"default:0"`
	FailedCount int              `json:"failedCount" gorm:"default:0"`
	SentAt      time.Time        `json:"sentAt"`
}
