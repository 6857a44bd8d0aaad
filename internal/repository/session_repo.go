package repository

import (
	"github.com/rahibvk/buyandsellmarketplace/internal/models"

	"gorm.io/gorm"
)

// SessionRepository persists issued refresh tokens. Rows are stored hashed and
// past-expiry rows are not filtered here; expiry checks belong to the caller.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new refresh token record
func (r *SessionRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// ListByUser returns all refresh token records for a user, expired ones included
func (r *SessionRepository) ListByUser(userID string) ([]models.RefreshToken, error) {
	var tokens []models.RefreshToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// DeleteByID removes a refresh token record and reports whether a row was
// actually deleted. Concurrent rotations of the same token race on this
// delete; the database serializes them so exactly one caller sees true.
func (r *SessionRepository) DeleteByID(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteAllByUser removes every refresh token record for a user
func (r *SessionRepository) DeleteAllByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
