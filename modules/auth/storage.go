package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Storage persists users.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage keeps users in process memory. Usernames are matched
// case-insensitively.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byLogin map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]*User),
		byLogin: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	login := normalizeUsername(user.Username)
	if _, ok := m.byLogin[login]; ok {
		return ErrUserExists
	}
	if _, ok := m.byID[user.ID]; ok {
		return ErrUserExists
	}

	cp := *user
	m.byID[user.ID] = &cp
	m.byLogin[login] = user.ID
	return nil
}

func (m *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.RLock()
	id, ok := m.byLogin[normalizeUsername(username)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return m.GetUserByID(ctx, id)
}

func (m *MemoryStorage) UpdateUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[user.ID]; !ok {
		return ErrUserNotFound
	}
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
