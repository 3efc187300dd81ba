// Package memory is an in-process persistence backend. It honours the same
// conditional-write contract as the DynamoDB repositories and is used for
// local runs and tests.
package memory

import (
	"sort"
	"strings"
	"sync"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"
)

// Store holds every table behind one lock so that multi-record writes are
// atomic.
type Store struct {
	mu        sync.RWMutex
	orders    map[string]entities.Order
	revisions map[string]entities.Revision
	profiles  map[string]entities.ClientProfile
	payments  map[string]entities.BillingPayment
}

func NewStore() *Store {
	return &Store{
		orders:    map[string]entities.Order{},
		revisions: map[string]entities.Revision{},
		profiles:  map[string]entities.ClientProfile{},
		payments:  map[string]entities.BillingPayment{},
	}
}

func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }

func (s *Store) Revisions() *RevisionRepository { return &RevisionRepository{s: s} }

func (s *Store) ClientProfiles() *ClientProfileRepository { return &ClientProfileRepository{s: s} }

func (s *Store) Payments() *BillingPaymentRepository { return &BillingPaymentRepository{s: s} }

func cloneOrder(o entities.Order) entities.Order {
	c := o
	c.Measurements = o.Measurements.Clone()
	c.History = append([]string{}, o.History...)
	c.Inspiration = cloneMedia(o.Inspiration)
	c.TermsAcceptedAt = clonePtr(o.TermsAcceptedAt)
	c.RevisionPolicyAcceptedAt = clonePtr(o.RevisionPolicyAcceptedAt)
	c.DepositPaidAt = clonePtr(o.DepositPaidAt)
	c.FinalPaymentPaidAt = clonePtr(o.FinalPaymentPaidAt)
	c.StatusChangedAt = clonePtr(o.StatusChangedAt)
	return c
}

func cloneRevision(r entities.Revision) entities.Revision {
	c := r
	c.Measurements = r.Measurements.Clone()
	c.Inspiration = cloneMedia(r.Inspiration)
	c.RevisionFeePaidAt = clonePtr(r.RevisionFeePaidAt)
	c.ApprovedAt = clonePtr(r.ApprovedAt)
	return c
}

func cloneMedia(m *entities.MediaRef) *entities.MediaRef {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func orderMatches(o entities.Order, f interfaces.OrderFilter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if st == o.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.CustomerRef != "" && o.CustomerRef != f.CustomerRef {
		return false
	}
	if f.RushOnly && !o.IsRushOrder {
		return false
	}
	if f.DeliveryFrom != nil && o.PreferredDeliveryDate.Before(*f.DeliveryFrom) {
		return false
	}
	if f.DeliveryTo != nil && o.PreferredDeliveryDate.After(*f.DeliveryTo) {
		return false
	}
	return true
}

func revisionMatches(r entities.Revision, f interfaces.RevisionFilter) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.CustomerRef != "" && r.CustomerRef != f.CustomerRef {
		return false
	}
	return true
}

// newestFirst orders by creation time descending, then id for stability.
func newestFirst[T any](items []T, created func(T) int64, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if ci != cj {
			return ci > cj
		}
		return strings.Compare(id(items[i]), id(items[j])) < 0
	})
}
