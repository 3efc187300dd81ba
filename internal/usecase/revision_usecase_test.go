package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"
	mock_interfaces "atelier_orders/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quotedOrder(t *testing.T, h *harness, days int, base int64) entities.Order {
	t.Helper()
	o := h.createOrder(t, "cust-1", days)
	q, err := h.orders.Quote(context.Background(), o.ID, decimal.NewFromInt(base), nil)
	require.NoError(t, err)
	return q
}

func TestRevisionUseCase_Sequencing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := quotedOrder(t, h, 20, 1000)

	const n = 4
	for i := 1; i <= n; i++ {
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{Reason: "fit"})
		require.NoError(t, err)
		assert.Equal(t, i, rev.RevisionNumber)
		assert.False(t, rev.IsFree)
		assert.True(t, rev.RevisionFee.Equal(decimal.NewFromInt(100)), "fee %s", rev.RevisionFee)
		assert.Equal(t, entities.RevisionStatusPending, rev.Status)
	}

	revs, err := h.ledger.ListByOrderID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, revs, n+1)
	for i, r := range revs {
		assert.Equal(t, i, r.RevisionNumber)
	}
	assert.True(t, revs[0].IsFree)
	assert.True(t, revs[0].RevisionFee.IsZero())

	stored := h.storedOrder(t, o.ID)
	assert.Equal(t, n, stored.RevisionCount)
	assert.Len(t, stored.History, n+1)
	assert.Equal(t, entities.OrderStatusRevisionRequested, stored.Status)
	assert.Equal(t, "1400", stored.TotalPrice.String())
	assert.Equal(t, "420", stored.DepositAmount.String())
	for i, r := range revs {
		assert.Equal(t, r.ID, stored.History[i])
	}
}

func TestRevisionUseCase_FeeUsesCurrentBasePrice(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := h.createOrder(t, "cust-1", 20)

	rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
	require.NoError(t, err)
	assert.True(t, rev.RevisionFee.IsZero(), "unquoted order has no base price yet")
	assert.False(t, rev.IsFree)

	_, err = h.orders.Quote(ctx, o.ID, decimal.NewFromInt(1500), nil)
	require.NoError(t, err)
	rev, err = h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
	require.NoError(t, err)
	assert.Equal(t, "150", rev.RevisionFee.String())
}

func TestRevisionUseCase_MergeInheritsCurrentValues(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := quotedOrder(t, h, 20, 1000)
	color := "champagne"

	rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{
		Measurements:    entities.Measurements{entities.MeasurementWaist: 0},
		ColorPreference: &color,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rev.Measurements[entities.MeasurementWaist], "zero is a value, not absence")
	assert.Equal(t, 90.0, rev.Measurements[entities.MeasurementBust])
	assert.Len(t, rev.Measurements, len(entities.MeasurementNames))
	assert.Equal(t, "champagne", rev.ColorPreference)
	assert.Equal(t, "none", rev.BodyConcerns)

	stored := h.storedOrder(t, o.ID)
	assert.Equal(t, 70.0, stored.Measurements[entities.MeasurementWaist], "order keeps its values until applied")
}

func TestRevisionUseCase_RequestRevision_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("order not found", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.ledger.RequestRevision(ctx, "missing", entities.RevisionPatch{})
		assert.True(t, errors.Is(err, ErrOrderNotFound))
	})

	t.Run("unknown measurement", func(t *testing.T) {
		h := newHarness(t)
		o := h.createOrder(t, "cust-1", 20)
		_, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{Measurements: entities.Measurements{"neck": 30}})
		assert.True(t, errors.Is(err, ErrInvalidMeasurements))
	})

	t.Run("delivered order", func(t *testing.T) {
		h := newHarness(t)
		o := h.createOrder(t, "cust-1", 20)
		_, err := h.orders.ChangeStatus(ctx, o.ID, entities.OrderStatusDelivered, "admin")
		require.NoError(t, err)

		_, err = h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		assert.True(t, errors.Is(err, ErrIllegalTransition))
		assert.Len(t, h.storedOrder(t, o.ID).History, 1)
	})
}

func TestRevisionUseCase_RepairsMissingOriginatingSnapshot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, err := h.store.Orders().Create(ctx, entities.Order{
		ID: "bare", CustomerRef: "cust-1", Measurements: fullMeasurements(),
		BasePrice: decimal.NewFromInt(1000), Status: entities.OrderStatusBillSent,
		History: []string{}, Version: 1, CreatedAt: refNow,
	})
	require.NoError(t, err)

	rev, err := h.ledger.RequestRevision(ctx, "bare", entities.RevisionPatch{})
	require.NoError(t, err)
	assert.Equal(t, 1, rev.RevisionNumber)

	revs, _ := h.ledger.ListByOrderID(ctx, "bare")
	require.Len(t, revs, 2)
	assert.Equal(t, 0, revs[0].RevisionNumber)
	assert.True(t, revs[0].IsFree)
}

func TestRevisionUseCase_ConcurrentRequestsGetDistinctNumbers(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := quotedOrder(t, h, 20, 1000)

	const n = 12
	var wg sync.WaitGroup
	numbers := make([]int, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
			numbers[i], errs[i] = rev.RevisionNumber, err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	sort.Ints(numbers)
	for i, got := range numbers {
		assert.Equal(t, i+1, got)
	}
	stored := h.storedOrder(t, o.ID)
	assert.Equal(t, n, stored.RevisionCount)
	assert.Len(t, stored.History, n+1)
	assert.Equal(t, "2200", stored.TotalPrice.String())
}

func TestRevisionUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("approve records approver", func(t *testing.T) {
		h := newHarness(t)
		o := quotedOrder(t, h, 20, 1000)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)

		approved, err := h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusApproved, "admin-7", "")
		require.NoError(t, err)
		assert.Equal(t, "admin-7", approved.ApprovedBy)
		require.NotNil(t, approved.ApprovedAt)
		assert.True(t, approved.ApprovedAt.Equal(refNow))
	})

	t.Run("reject keeps approver empty", func(t *testing.T) {
		h := newHarness(t)
		o := quotedOrder(t, h, 20, 1000)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)

		rejected, err := h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusRejected, "admin-7", "fabric unavailable")
		require.NoError(t, err)
		assert.Equal(t, "", rejected.ApprovedBy)
		assert.Nil(t, rejected.ApprovedAt)
		assert.Equal(t, "fabric unavailable", rejected.AdminNotes)

		h.notifier.Drain()
		msgs := h.dispatcher.customerMessages("cust-1")
		assert.Contains(t, msgs[len(msgs)-1], "fabric unavailable")
	})

	t.Run("rejected cannot be approved", func(t *testing.T) {
		h := newHarness(t)
		o := quotedOrder(t, h, 20, 1000)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)
		_, err = h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusRejected, "admin", "")
		require.NoError(t, err)

		_, err = h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusApproved, "admin", "")
		require.True(t, errors.Is(err, ErrIllegalTransition))

		stored, err := h.ledger.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.RevisionStatusRejected, stored.Status)
		assert.Equal(t, "", stored.ApprovedBy)
	})

	t.Run("pending cannot be applied", func(t *testing.T) {
		h := newHarness(t)
		o := quotedOrder(t, h, 20, 1000)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)
		_, err = h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusApplied, "admin", "")
		assert.True(t, errors.Is(err, ErrRevisionTransition))
	})

	t.Run("applied copies snapshot to order", func(t *testing.T) {
		h := newHarness(t)
		o := quotedOrder(t, h, 20, 1000)
		media := &entities.MediaRef{URL: "http://files.local/x", StorageID: "x"}
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{
			Measurements: entities.Measurements{entities.MeasurementHips: 101},
			Inspiration:  media,
		})
		require.NoError(t, err)
		_, err = h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusApproved, "admin", "")
		require.NoError(t, err)
		applied, err := h.ledger.SetStatus(ctx, rev.ID, entities.RevisionStatusApplied, "admin", "")
		require.NoError(t, err)
		assert.Equal(t, "admin", applied.ApprovedBy)

		stored := h.storedOrder(t, o.ID)
		assert.Equal(t, 101.0, stored.Measurements[entities.MeasurementHips])
		require.NotNil(t, stored.Inspiration)
		assert.Equal(t, "x", stored.Inspiration.StorageID)
	})

	t.Run("unknown status", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.ledger.SetStatus(ctx, "r1", "archived", "admin", "")
		assert.True(t, errors.Is(err, ErrInvalidRevisionStatus))
	})

	t.Run("not found", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.ledger.SetStatus(ctx, "missing", entities.RevisionStatusApproved, "admin", "")
		assert.True(t, errors.Is(err, ErrRevisionNotFound))
	})
}

func TestRevisionUseCase_MarkFeePaid(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := quotedOrder(t, h, 20, 1000)
	rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
	require.NoError(t, err)

	paid, err := h.ledger.MarkFeePaid(ctx, rev.ID)
	require.NoError(t, err)
	assert.True(t, paid.RevisionFeePaid)
	require.NotNil(t, paid.RevisionFeePaidAt)

	again, err := h.ledger.MarkFeePaid(ctx, rev.ID)
	require.NoError(t, err, "re-marking is a no-op")
	assert.True(t, again.RevisionFeePaidAt.Equal(*paid.RevisionFeePaidAt))

	stored := h.storedOrder(t, o.ID)
	_, err = h.ledger.MarkFeePaid(ctx, stored.History[0])
	assert.True(t, errors.Is(err, ErrRevisionFeeNotRequired))

	h.notifier.Drain()
	feeMsgs := 0
	for _, m := range h.dispatcher.customerMessages("cust-1") {
		if m == msgRevisionFeePaid(o.ID) {
			feeMsgs++
		}
	}
	assert.Equal(t, 1, feeMsgs)
}

func TestRevisionUseCase_Listings(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o := quotedOrder(t, h, 20, 1000)
	for i := 0; i < 3; i++ {
		_, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)
	}

	pending, err := h.ledger.ListPending(ctx, interfaces.NewPage(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, pending.Total)
	assert.Len(t, pending.Items, 2)

	all, err := h.ledger.ListAll(ctx, interfaces.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)

	mine, err := h.ledger.ListByCustomer(ctx, "cust-1", interfaces.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 4, mine.Total)

	_, err = h.ledger.ListByCustomer(ctx, "", interfaces.NewPage(1, 10))
	assert.True(t, errors.Is(err, ErrInvalidCustomerRef))

	missing, err := h.ledger.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRevisionUseCase_RetriesLostWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	revisions := mock_interfaces.NewMockIRevisionRepository(ctrl)
	uc := NewRevisionUseCase(orders, revisions, nil, fixedClock)

	o := entities.Order{ID: "o1", CustomerRef: "c", History: []string{"r0"}, Measurements: fullMeasurements(), Version: 3}
	newer := o
	newer.Version = 4

	gomock.InOrder(
		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil),
		revisions.EXPECT().CreateWithOrder(gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			Return(entities.Revision{}, entities.Order{}, interfaces.ErrConcurrentUpdate),
		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(newer, nil),
		revisions.EXPECT().CreateWithOrder(gomock.Any(), gomock.Any(), gomock.Any(), int64(4)).
			DoAndReturn(func(_ context.Context, r entities.Revision, next entities.Order, _ int64) (entities.Revision, entities.Order, error) {
				next.Version = 5
				return r, next, nil
			}),
	)

	rev, err := uc.RequestRevision(context.Background(), "o1", entities.RevisionPatch{})
	require.NoError(t, err)
	assert.Equal(t, 1, rev.RevisionNumber)
}

func TestRevisionUseCase_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	revisions := mock_interfaces.NewMockIRevisionRepository(ctrl)
	uc := NewRevisionUseCase(orders, revisions, nil, fixedClock)

	o := entities.Order{ID: "o1", History: []string{"r0"}, Version: 1}
	orders.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil).Times(maxWriteAttempts)
	revisions.EXPECT().CreateWithOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.Revision{}, entities.Order{}, interfaces.ErrConcurrentUpdate).Times(maxWriteAttempts)

	_, err := uc.RequestRevision(context.Background(), "o1", entities.RevisionPatch{})
	assert.True(t, errors.Is(err, interfaces.ErrConcurrentUpdate))
}
