package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tamagotchi-api/internal/domain/users"
)

type userRepo struct {
	mu         sync.RWMutex
	byUsername map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byUsername: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return users.ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return users.User{}, users.ErrUserNotFound
	}
	return u, nil
}
