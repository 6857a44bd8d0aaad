package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rahibvk/buyandsellmarketplace/internal/config"
	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/repository"
	"github.com/rahibvk/buyandsellmarketplace/internal/security"

	"go.uber.org/zap"
)

// AuthService owns signup, login, refresh-token rotation and revocation.
// Refresh tokens are single-use: a successful refresh deletes the presented
// record and issues a replacement pair.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	audit    AuditStore
	hasher   *security.PasswordHasher
	codec    *security.TokenCodec

	accessTTL  time.Duration
	refreshTTL time.Duration

	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	users UserStore,
	sessions SessionStore,
	audit AuditStore,
	hasher *security.PasswordHasher,
	codec *security.TokenCodec,
	jwtCfg config.JWTConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		audit:      audit,
		hasher:     hasher,
		codec:      codec,
		accessTTL:  jwtCfg.AccessTokenExpiry,
		refreshTTL: jwtCfg.RefreshTokenExpiry,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the service's time source for expiry tests
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// UserResponse is the public projection of a user record
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	City      *string   `json:"city"`
	Region    *string   `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		City:      user.City,
		Region:    user.Region,
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse carries a freshly issued token pair. The refresh token
// plaintext appears here and nowhere else.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         UserResponse `json:"user"`
}

// Signup registers a new account and issues its first token pair
func (s *AuthService) Signup(email, password string, city, region *string) (*AuthResponse, error) {
	email = normalizeEmail(email)

	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		City:         city,
		Region:       region,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_signup", nil, fmt.Sprintf("User %s signed up", email))
	s.logger.Info("user signed up", zap.String("user_id", user.ID))

	return s.issue(user)
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password collapse to the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_login", nil, fmt.Sprintf("User %s logged in", email))
	s.logger.Info("user logged in", zap.String("user_id", user.ID))

	return s.issue(user)
}

// Refresh rotates a refresh token: the presented token is matched against the
// subject's stored session hashes, the matched record is deleted and a new
// pair is issued. A token that loses the delete race, has no matching record
// or belongs to an expired session is rejected.
func (s *AuthService) Refresh(presented string) (*AuthResponse, error) {
	userID, err := s.codec.Verify(presented)
	if err != nil {
		return nil, ErrInvalidToken
	}

	match, err := s.findSession(userID, presented)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrInvalidOrExpiredToken
	}

	deleted, err := s.sessions.DeleteByID(match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !deleted {
		// A concurrent refresh with the same token won the rotation.
		return nil, ErrInvalidOrExpiredToken
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return s.issue(user)
}

// Logout revokes the session matching the presented refresh token. Garbage
// tokens and already-revoked sessions are silently accepted; logout is
// best-effort and never fails the caller.
func (s *AuthService) Logout(presented string) error {
	userID, err := s.codec.Verify(presented)
	if err != nil {
		return nil
	}

	tokens, err := s.sessions.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	for i := range tokens {
		if s.hasher.VerifyToken(presented, tokens[i].TokenHash) {
			if _, err := s.sessions.DeleteByID(tokens[i].ID); err != nil {
				return fmt.Errorf("failed to revoke session: %w", err)
			}
			break
		}
	}
	return nil
}

// RevokeAllSessions deletes every outstanding refresh token for a user.
// Called by moderation when banning.
func (s *AuthService) RevokeAllSessions(userID string) error {
	if err := s.sessions.DeleteAllByUser(userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}

// issue mints an access/refresh pair bound to the user and persists the hash
// of the refresh token as a new session record
func (s *AuthService) issue(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.codec.Sign(user.ID, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.codec.Sign(user.ID, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	tokenHash, err := s.hasher.HashToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	session := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         NewUserResponse(user),
	}, nil
}

// findSession scans the subject's stored sessions for one whose hash matches
// the presented token. The hash is salted, so an equality lookup is not
// possible; the subject claim bounds the scan to one user's sessions.
func (s *AuthService) findSession(userID, presented string) (*models.RefreshToken, error) {
	tokens, err := s.sessions.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	for i := range tokens {
		if s.hasher.VerifyToken(presented, tokens[i].TokenHash) {
			if s.now().After(tokens[i].ExpiresAt) {
				return nil, nil
			}
			return &tokens[i], nil
		}
	}
	return nil, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
