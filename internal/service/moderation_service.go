package service

import (
	"errors"
	"fmt"

	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/repository"

	"go.uber.org/zap"
)

// SessionRevoker is the slice of the session manager moderation needs.
// Satisfied by *AuthService.
type SessionRevoker interface {
	RevokeAllSessions(userID string) error
}

// ModerationService applies admin actions to user accounts. Moderation is
// soft: users are banned, never hard-deleted.
type ModerationService struct {
	users   UserStore
	revoker SessionRevoker
	audit   AuditStore
	logger  *zap.Logger
}

func NewModerationService(users UserStore, revoker SessionRevoker, audit AuditStore, logger *zap.Logger) *ModerationService {
	return &ModerationService{
		users:   users,
		revoker: revoker,
		audit:   audit,
		logger:  logger,
	}
}

// BanUser sets the ban flag and revokes every outstanding session so already
// issued refresh tokens stop working immediately
func (s *ModerationService) BanUser(admin *models.User, userID, reason string) error {
	user, err := s.loadTarget(userID)
	if err != nil {
		return err
	}

	user.IsBanned = true
	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to ban user: %w", err)
	}

	if err := s.revoker.RevokeAllSessions(userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	_ = s.audit.CreateAuditLog(&admin.ID, "ban_user", &userID, reason)
	s.logger.Info("user banned", zap.String("user_id", userID), zap.String("admin_id", admin.ID))
	return nil
}

// UnbanUser clears the ban flag. Revoked sessions stay revoked; the user logs
// in again.
func (s *ModerationService) UnbanUser(admin *models.User, userID, reason string) error {
	user, err := s.loadTarget(userID)
	if err != nil {
		return err
	}

	user.IsBanned = false
	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to unban user: %w", err)
	}

	_ = s.audit.CreateAuditLog(&admin.ID, "unban_user", &userID, reason)
	s.logger.Info("user unbanned", zap.String("user_id", userID), zap.String("admin_id", admin.ID))
	return nil
}

func (s *ModerationService) loadTarget(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
