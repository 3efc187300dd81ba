package memory

import (
	"context"
	"sort"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

type BillingPaymentRepository struct {
	s *Store
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[p.ID]; ok {
		return entities.BillingPayment{}, errors.Errorf("payment %s already exists", p.ID)
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *BillingPaymentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.BillingPayment, error) {
	r.s.mu.RLock()
	out := []entities.BillingPayment{}
	for _, p := range r.s.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
