package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog represents the audit_logs table
// Used for security tracking and moderation action logging
type AuditLog struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	ActorID   *string   `gorm:"type:char(36);index" json:"actor_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	TargetID  *string   `gorm:"type:char(36);index" json:"target_id"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate assigns a UUID primary key
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
