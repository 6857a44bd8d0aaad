package repository

import (
	"github.com/rahibvk/buyandsellmarketplace/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(actorID *string, action string, targetID *string, details string) error {
	entry := &models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Details:  details,
	}
	return r.db.Create(entry).Error
}
