package service_test

import (
	"strings"
	"sync"
	"time"

	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/repository"

	"github.com/google/uuid"
)

// memUserStore is a mutex-guarded in-memory service.UserStore
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) FindByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *memUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserStore) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// memSessionStore is a mutex-guarded in-memory service.SessionStore. The
// mutex gives DeleteByID the same winner-takes-all semantics as the
// database's conditional delete.
type memSessionStore struct {
	mu   sync.Mutex
	rows map[string]models.RefreshToken
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{rows: make(map[string]models.RefreshToken)}
}

func (s *memSessionStore) Create(token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	s.rows[token.ID] = *token
	return nil
}

func (s *memSessionStore) ListByUser(userID string) ([]models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RefreshToken
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memSessionStore) DeleteByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func (s *memSessionStore) DeleteAllByUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.rows {
		if row.UserID == userID {
			delete(s.rows, id)
		}
	}
	return nil
}

func (s *memSessionStore) expireUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.rows {
		if row.UserID == userID {
			row.ExpiresAt = time.Now().Add(-time.Hour)
			s.rows[id] = row
		}
	}
}

func (s *memSessionStore) countByUser(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, row := range s.rows {
		if row.UserID == userID {
			n++
		}
	}
	return n
}

// memAuditStore is a mutex-guarded in-memory service.AuditStore
type memAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func newMemAuditStore() *memAuditStore {
	return &memAuditStore{}
}

func (s *memAuditStore) CreateAuditLog(actorID *string, action string, targetID *string, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Details:  details,
	})
	return nil
}

func (s *memAuditStore) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.entries {
		out = append(out, e.Action)
	}
	return out
}
