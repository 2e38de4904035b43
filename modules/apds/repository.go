package apds

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/eapd/pkg/apd"
)

// Repository lists documents by state code.
type Repository interface {
	ListByState(ctx context.Context, state string) ([]apd.Document, error)
}

// MemoryRepository keeps documents in memory, keyed by lower-case state code.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string][]apd.Document
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string][]apd.Document)}
}

// Add appends docs to state.
func (m *MemoryRepository) Add(state string, docs ...apd.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(state)
	m.docs[key] = append(m.docs[key], docs...)
}

func (m *MemoryRepository) ListByState(_ context.Context, state string) ([]apd.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.docs[strings.ToLower(state)]), nil
}
