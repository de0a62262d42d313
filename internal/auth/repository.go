package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for user storage.
type Repository interface {
	// Create inserts a new account; ErrEmailTaken when the email already
	// exists (enforced by the store's unique constraint).
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)
	// FindByEmail returns ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// InMemoryRepository keeps users in a map for tests and local runs.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*User)}
}

// Create inserts a new account, enforcing email uniqueness.
func (r *InMemoryRepository) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	key := strings.ToLower(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	user := &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[key] = user

	cp := *user
	return &cp, nil
}

// FindByEmail looks a user up by email.
func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}
