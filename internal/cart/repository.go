package cart

import (
	"context"
	"sync"
)

// Repository persists cart lines keyed by shopping session.
type Repository interface {
	Get(ctx context.Context, sessionID string) ([]Item, error)
	Put(ctx context.Context, sessionID string, items []Item) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

// NewMemoryRepository returns an in-process cart store.
func NewMemoryRepository() Repository {
	return &memoryRepository{carts: make(map[string][]Item)}
}

func (r *memoryRepository) Get(ctx context.Context, sessionID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *memoryRepository) Put(ctx context.Context, sessionID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[sessionID] = stored
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
