package service_test

import (
	"testing"

	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newModerationFixture(t *testing.T) (*authFixture, *service.ModerationService, *models.User) {
	t.Helper()

	f := newAuthFixture(t)
	mod := service.NewModerationService(f.users, f.svc, f.audit, zap.NewNop())

	admin := &models.User{Email: "admin@x.com", Role: models.RoleAdmin}
	require.NoError(t, f.users.Create(admin))

	return f, mod, admin
}

func TestBanUserRevokesSessions(t *testing.T) {
	f, mod, admin := newModerationFixture(t)

	signup, err := f.svc.Signup("target@x.com", "pw123456", nil, nil)
	require.NoError(t, err)
	_, err = f.svc.Login("target@x.com", "pw123456")
	require.NoError(t, err)
	require.Equal(t, 2, f.sessions.countByUser(signup.User.ID))

	require.NoError(t, mod.BanUser(admin, signup.User.ID, "spam"))

	banned, err := f.users.FindByID(signup.User.ID)
	require.NoError(t, err)
	assert.True(t, banned.IsBanned)
	assert.Equal(t, 0, f.sessions.countByUser(signup.User.ID))

	// Previously issued, still-unexpired refresh tokens are dead
	_, err = f.svc.Refresh(signup.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

	assert.Contains(t, f.audit.actions(), "ban_user")
}

func TestUnbanUserKeepsSessionsRevoked(t *testing.T) {
	f, mod, admin := newModerationFixture(t)

	signup, err := f.svc.Signup("target@x.com", "pw123456", nil, nil)
	require.NoError(t, err)

	require.NoError(t, mod.BanUser(admin, signup.User.ID, ""))
	require.NoError(t, mod.UnbanUser(admin, signup.User.ID, "appeal accepted"))

	user, err := f.users.FindByID(signup.User.ID)
	require.NoError(t, err)
	assert.False(t, user.IsBanned)

	// Unban does not resurrect sessions; the user logs in again
	assert.Equal(t, 0, f.sessions.countByUser(signup.User.ID))
	_, err = f.svc.Login("target@x.com", "pw123456")
	require.NoError(t, err)
}

func TestModerationUnknownUser(t *testing.T) {
	_, mod, admin := newModerationFixture(t)

	err := mod.BanUser(admin, "no-such-id", "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	err = mod.UnbanUser(admin, "no-such-id", "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
