package service

import "github.com/rahibvk/buyandsellmarketplace/internal/models"

// UserStore is the user directory consumed by the services. Satisfied by
// repository.UserRepository.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

// SessionStore persists issued refresh tokens. Satisfied by
// repository.SessionRepository. DeleteByID must report whether a row was
// removed so that concurrent rotations of one token resolve to a single
// winner.
type SessionStore interface {
	Create(token *models.RefreshToken) error
	ListByUser(userID string) ([]models.RefreshToken, error)
	DeleteByID(id string) (bool, error)
	DeleteAllByUser(userID string) error
}

// AuditStore records security and moderation events. Satisfied by
// repository.AuditRepository.
type AuditStore interface {
	CreateAuditLog(actorID *string, action string, targetID *string, details string) error
}
