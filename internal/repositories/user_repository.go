package repositories

import (
	"errors"

	"minipay/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository is the registry of all known users, keyed by username.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}

// userRepository keeps users in memory; the whole system is a
// single-process simulation with no persistence.
type userRepository struct {
	users map[string]*models.User
}

// NewUserRepository creates an empty in-memory user registry.
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]*models.User)}
}

func (r *userRepository) Create(user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return ErrUsernameTaken
	}
	r.users[user.Username] = user
	return nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
