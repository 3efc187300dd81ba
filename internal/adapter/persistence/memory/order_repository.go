package memory

import (
	"context"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

type OrderRepository struct {
	s *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; ok {
		return entities.Order{}, errors.Errorf("order %s already exists", o.ID)
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) Update(_ context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.putOrder(o, expectedVersion)
}

// putOrder must be called with the write lock held.
func (s *Store) putOrder(o entities.Order, expectedVersion int64) (entities.Order, error) {
	cur, ok := s.orders[o.ID]
	if !ok || cur.Version != expectedVersion {
		return entities.Order{}, interfaces.ErrConcurrentUpdate
	}
	o.Version = expectedVersion + 1
	s.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) List(_ context.Context, filter interfaces.OrderFilter, page interfaces.Page) ([]entities.Order, error) {
	return interfaces.Slice(r.matching(filter), page), nil
}

func (r *OrderRepository) Count(_ context.Context, filter interfaces.OrderFilter) (int, error) {
	return len(r.matching(filter)), nil
}

func (r *OrderRepository) ListAll(_ context.Context) ([]entities.Order, error) {
	return r.matching(interfaces.OrderFilter{}), nil
}

func (r *OrderRepository) matching(filter interfaces.OrderFilter) []entities.Order {
	r.s.mu.RLock()
	out := make([]entities.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if orderMatches(o, filter) {
			out = append(out, cloneOrder(o))
		}
	}
	r.s.mu.RUnlock()

	newestFirst(out,
		func(o entities.Order) int64 { return o.CreatedAt.UnixNano() },
		func(o entities.Order) string { return o.ID })
	return out
}
