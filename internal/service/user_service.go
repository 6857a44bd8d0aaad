package service

import (
	"errors"
	"fmt"

	"github.com/rahibvk/buyandsellmarketplace/internal/models"
	"github.com/rahibvk/buyandsellmarketplace/internal/repository"
)

// UserService covers the public profile operations. Role and ban state are
// moderation concerns and are not mutable here.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID loads a user by id
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UpdateProfile mutates the caller's own profile fields. Nil fields are left
// untouched.
func (s *UserService) UpdateProfile(user *models.User, city, region *string) (*models.User, error) {
	if city != nil {
		user.City = city
	}
	if region != nil {
		user.Region = region
	}

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
