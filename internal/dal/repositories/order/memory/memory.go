package memoryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/corray333/cargo-manager/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/cargo-manager/internal/service/models/order"
)

// OrderRepository is a mutex-guarded in-memory implementation of the order
// repository, used by service tests and local development.
type OrderRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]order.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		nextID: 1,
		items:  make(map[int64]order.Order),
	}
}

func (r *OrderRepository) Query(_ context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]order.Order, 0, len(r.items))
	for _, o := range r.items {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}

	return &o, nil
}

func (r *OrderRepository) Insert(_ context.Context, o order.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.items[o.ID] = o

	return o.ID, nil
}

func (r *OrderRepository) Update(_ context.Context, o order.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[o.ID]; !ok {
		return 0, nil
	}
	r.items[o.ID] = o

	return 1, nil
}

func (r *OrderRepository) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)

	return 1, nil
}

var _ iorderrepo.IOrderRepository = (*OrderRepository)(nil)
