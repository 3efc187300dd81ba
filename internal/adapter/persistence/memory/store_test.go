package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedOrder(t *testing.T, s *Store, id, customer string, created time.Time) entities.Order {
	t.Helper()
	o, err := s.Orders().Create(context.Background(), entities.Order{
		ID:           id,
		CustomerRef:  customer,
		Status:       entities.OrderStatusFormSubmitted,
		Measurements: entities.Measurements{entities.MeasurementBust: 90},
		History:      []string{},
		Version:      1,
		CreatedAt:    created,
	})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_ConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o := seedOrder(t, s, "o1", "c1", t0)

	o.Status = entities.OrderStatusBillSent
	updated, err := s.Orders().Update(ctx, o, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = s.Orders().Update(ctx, o, 1)
	assert.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))

	_, err = s.Orders().Update(ctx, entities.Order{ID: "missing"}, 1)
	assert.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedOrder(t, s, "o1", "c1", t0)

	got, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	got.Measurements[entities.MeasurementBust] = 1
	got.History = append(got.History, "x")

	again, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 90.0, again.Measurements[entities.MeasurementBust])
	assert.Empty(t, again.History)

	missing, err := s.Orders().GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)
}

func TestOrderRepository_ListFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for i, id := range []string{"a", "b", "c", "d"} {
		seedOrder(t, s, id, "c1", t0.Add(time.Duration(i)*time.Hour))
	}
	seedOrder(t, s, "e", "c2", t0)

	page, err := s.Orders().List(ctx, interfaces.OrderFilter{CustomerRef: "c1"}, interfaces.NewPage(1, 3))
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "d", page[0].ID, "newest first")

	page, err = s.Orders().List(ctx, interfaces.OrderFilter{CustomerRef: "c1"}, interfaces.NewPage(2, 3))
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)

	n, err := s.Orders().Count(ctx, interfaces.OrderFilter{CustomerRef: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = s.Orders().Count(ctx, interfaces.OrderFilter{Status: entities.OrderStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRevisionRepository_CreateWithOrderIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o := seedOrder(t, s, "o1", "c1", t0)

	rev := entities.Revision{ID: "r0", OrderID: "o1", Status: entities.RevisionStatusApproved, CreatedAt: t0}
	next := o
	next.History = []string{"r0"}

	_, _, err := s.Revisions().CreateWithOrder(ctx, rev, next, 7)
	require.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))
	got, _ := s.Revisions().GetByID(ctx, "r0")
	assert.Equal(t, "", got.ID, "revision must not be stored when the order write fails")

	created, updated, err := s.Revisions().CreateWithOrder(ctx, rev, next, 1)
	require.NoError(t, err)
	assert.Equal(t, "r0", created.ID)
	assert.Equal(t, []string{"r0"}, updated.History)
	assert.Equal(t, int64(2), updated.Version)
}

func TestRevisionRepository_UpdateChecksStatus(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o := seedOrder(t, s, "o1", "c1", t0)
	rev := entities.Revision{ID: "r1", OrderID: "o1", RevisionNumber: 1, Status: entities.RevisionStatusPending, CreatedAt: t0}
	_, o, err := s.Revisions().CreateWithOrder(ctx, rev, o, o.Version)
	require.NoError(t, err)

	rev.Status = entities.RevisionStatusApproved
	_, err = s.Revisions().Update(ctx, rev, entities.RevisionStatusPending)
	require.NoError(t, err)

	rev.Status = entities.RevisionStatusRejected
	_, err = s.Revisions().Update(ctx, rev, entities.RevisionStatusPending)
	assert.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))

	rev.Status = entities.RevisionStatusApplied
	o.Measurements = entities.Measurements{entities.MeasurementBust: 95}
	_, _, err = s.Revisions().UpdateWithOrder(ctx, rev, entities.RevisionStatusApproved, o, o.Version-1)
	require.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))
	stored, _ := s.Revisions().GetByID(ctx, "r1")
	assert.Equal(t, entities.RevisionStatusApproved, stored.Status, "revision unchanged when the order write fails")

	_, updated, err := s.Revisions().UpdateWithOrder(ctx, rev, entities.RevisionStatusApproved, o, o.Version)
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.Measurements[entities.MeasurementBust])
}

func TestRevisionRepository_ListByOrderIDSorted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o := seedOrder(t, s, "o1", "c1", t0)
	for _, n := range []int{2, 0, 1} {
		rev := entities.Revision{ID: string(rune('a' + n)), OrderID: "o1", RevisionNumber: n, Status: entities.RevisionStatusPending, CreatedAt: t0}
		var err error
		_, o, err = s.Revisions().CreateWithOrder(ctx, rev, o, o.Version)
		require.NoError(t, err)
	}
	revs, err := s.Revisions().ListByOrderID(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, revs, 3)
	for i, r := range revs {
		assert.Equal(t, i, r.RevisionNumber)
	}
}

func TestClientProfileRepository_UpsertKeepsCounter(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().ClientProfiles()

	_, err := repo.Upsert(ctx, entities.ClientProfile{CustomerRef: "c1", FullName: "A", PhoneNumber: "0911", CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)
	require.NoError(t, repo.IncrementOrderCount(ctx, "c1"))
	require.NoError(t, repo.IncrementOrderCount(ctx, "c1"))

	p, err := repo.Upsert(ctx, entities.ClientProfile{CustomerRef: "c1", FullName: "B", PhoneNumber: "0922", CreatedAt: t0.Add(time.Hour), UpdatedAt: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalOrders)
	assert.Equal(t, "B", p.FullName)
	assert.True(t, p.CreatedAt.Equal(t0))

	byPhone, err := repo.GetByPhoneNumber(ctx, "0922")
	require.NoError(t, err)
	assert.Equal(t, "c1", byPhone.CustomerRef)

	require.NoError(t, repo.SetOrderCount(ctx, "c1", 5))
	got, _ := repo.GetByCustomerRef(ctx, "c1")
	assert.Equal(t, 5, got.TotalOrders)
}

func TestContentStorage(t *testing.T) {
	ctx := context.Background()
	cs := NewContentStorage("http://files.local/")
	ref, err := cs.Upload(ctx, []byte("img"), "inspirations")
	require.NoError(t, err)
	assert.Contains(t, ref.URL, "http://files.local/inspirations/")

	_, ok := cs.Get(ref.StorageID)
	assert.True(t, ok)
	require.NoError(t, cs.Delete(ctx, ref.StorageID))
	_, ok = cs.Get(ref.StorageID)
	assert.False(t, ok)
}
