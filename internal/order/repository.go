package order

import (
	"context"
	"sync"
)

// Repository persists orders. Update serializes mutations per store so
// concurrent status changes on the same order cannot interleave.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Update(ctx context.Context, orderID string, mutate func(*Order) error) (*Order, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*Order
	seq    []string
}

// NewMemoryRepository returns an in-process order store. Reads hand out
// deep copies; writes go through Update under the store lock.
func NewMemoryRepository() Repository {
	return &memoryRepository{orders: make(map[string]*Order)}
}

func (r *memoryRepository) Save(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.OrderID]; !exists {
		r.seq = append(r.seq, o.OrderID)
	}
	r.orders[o.OrderID] = o.Clone()
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.orders[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0, len(r.seq))
	for _, id := range r.seq {
		out = append(out, r.orders[id].Clone())
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, orderID string, mutate func(*Order) error) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, exists := r.orders[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}

	// Mutate a copy so a failed mutation leaves the stored order untouched.
	cp := o.Clone()
	if err := mutate(cp); err != nil {
		return nil, err
	}
	r.orders[orderID] = cp

	return cp.Clone(), nil
}
