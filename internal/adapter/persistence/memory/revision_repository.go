package memory

import (
	"context"
	"sort"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

type RevisionRepository struct {
	s *Store
}

var _ interfaces.IRevisionRepository = (*RevisionRepository)(nil)

func (r *RevisionRepository) GetByID(_ context.Context, id string) (entities.Revision, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rev, ok := r.s.revisions[id]
	if !ok {
		return entities.Revision{}, nil
	}
	return cloneRevision(rev), nil
}

// ListByOrderID returns the order's revisions by ascending revision number.
func (r *RevisionRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.Revision, error) {
	r.s.mu.RLock()
	out := []entities.Revision{}
	for _, rev := range r.s.revisions {
		if rev.OrderID == orderID {
			out = append(out, cloneRevision(rev))
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].RevisionNumber < out[j].RevisionNumber })
	return out, nil
}

func (r *RevisionRepository) List(_ context.Context, filter interfaces.RevisionFilter, page interfaces.Page) ([]entities.Revision, error) {
	return interfaces.Slice(r.matching(filter), page), nil
}

func (r *RevisionRepository) Count(_ context.Context, filter interfaces.RevisionFilter) (int, error) {
	return len(r.matching(filter)), nil
}

func (r *RevisionRepository) CreateWithOrder(_ context.Context, rev entities.Revision, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.revisions[rev.ID]; ok {
		return entities.Revision{}, entities.Order{}, errors.Errorf("revision %s already exists", rev.ID)
	}
	updated, err := r.s.putOrder(o, expectedOrderVersion)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}
	r.s.revisions[rev.ID] = cloneRevision(rev)
	return cloneRevision(rev), updated, nil
}

func (r *RevisionRepository) Update(_ context.Context, rev entities.Revision, expectedStatus entities.RevisionStatus) (entities.Revision, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkRevision(rev.ID, expectedStatus); err != nil {
		return entities.Revision{}, err
	}
	r.s.revisions[rev.ID] = cloneRevision(rev)
	return cloneRevision(rev), nil
}

func (r *RevisionRepository) UpdateWithOrder(_ context.Context, rev entities.Revision, expectedStatus entities.RevisionStatus, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkRevision(rev.ID, expectedStatus); err != nil {
		return entities.Revision{}, entities.Order{}, err
	}
	updated, err := r.s.putOrder(o, expectedOrderVersion)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}
	r.s.revisions[rev.ID] = cloneRevision(rev)
	return cloneRevision(rev), updated, nil
}

func (s *Store) checkRevision(id string, expectedStatus entities.RevisionStatus) error {
	cur, ok := s.revisions[id]
	if !ok || cur.Status != expectedStatus {
		return interfaces.ErrConcurrentUpdate
	}
	return nil
}

func (r *RevisionRepository) matching(filter interfaces.RevisionFilter) []entities.Revision {
	r.s.mu.RLock()
	out := make([]entities.Revision, 0, len(r.s.revisions))
	for _, rev := range r.s.revisions {
		if revisionMatches(rev, filter) {
			out = append(out, cloneRevision(rev))
		}
	}
	r.s.mu.RUnlock()

	newestFirst(out,
		func(r entities.Revision) int64 { return r.CreatedAt.UnixNano() },
		func(r entities.Revision) string { return r.ID })
	return out
}
