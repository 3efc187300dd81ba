package memory

import (
	"context"
	"sort"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"
)

type ClientProfileRepository struct {
	s *Store
}

var _ interfaces.IClientProfileRepository = (*ClientProfileRepository)(nil)

func (r *ClientProfileRepository) Upsert(_ context.Context, p entities.ClientProfile) (entities.ClientProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.profiles[p.CustomerRef]; ok {
		p.CreatedAt = cur.CreatedAt
		p.TotalOrders = cur.TotalOrders
	} else {
		p.TotalOrders = 0
	}
	r.s.profiles[p.CustomerRef] = p
	return p, nil
}

func (r *ClientProfileRepository) IncrementOrderCount(_ context.Context, customerRef string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.profiles[customerRef]
	p.CustomerRef = customerRef
	p.TotalOrders++
	r.s.profiles[customerRef] = p
	return nil
}

func (r *ClientProfileRepository) SetOrderCount(_ context.Context, customerRef string, count int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.profiles[customerRef]
	p.CustomerRef = customerRef
	p.TotalOrders = count
	r.s.profiles[customerRef] = p
	return nil
}

func (r *ClientProfileRepository) GetByCustomerRef(_ context.Context, customerRef string) (entities.ClientProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profiles[customerRef], nil
}

func (r *ClientProfileRepository) GetByPhoneNumber(_ context.Context, phoneNumber string) (entities.ClientProfile, error) {
	for _, p := range r.all() {
		if p.PhoneNumber == phoneNumber {
			return p, nil
		}
	}
	return entities.ClientProfile{}, nil
}

func (r *ClientProfileRepository) List(_ context.Context, page interfaces.Page) ([]entities.ClientProfile, error) {
	return interfaces.Slice(r.all(), page), nil
}

func (r *ClientProfileRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.profiles), nil
}

// all returns profiles most recently updated first.
func (r *ClientProfileRepository) all() []entities.ClientProfile {
	r.s.mu.RLock()
	out := make([]entities.ClientProfile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, p)
	}
	r.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].CustomerRef < out[j].CustomerRef
	})
	return out
}
