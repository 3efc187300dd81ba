package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"atelier_orders/internal/adapter/persistence/memory"
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

var refNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

type recordingDispatcher struct {
	mu        sync.Mutex
	customer  map[string][]string
	operators []string
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{customer: map[string][]string{}}
}

func (d *recordingDispatcher) NotifyCustomer(_ context.Context, customerRef, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customer[customerRef] = append(d.customer[customerRef], message)
	return nil
}

func (d *recordingDispatcher) NotifyOperators(_ context.Context, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.operators = append(d.operators, message)
	return nil
}

func (d *recordingDispatcher) customerMessages(ref string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string{}, d.customer[ref]...)
}

func (d *recordingDispatcher) operatorMessages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string{}, d.operators...)
}

// flakyRevisions fails the next failCreates CreateWithOrder calls.
type flakyRevisions struct {
	interfaces.IRevisionRepository
	failCreates atomic.Int32
}

func (f *flakyRevisions) CreateWithOrder(ctx context.Context, r entities.Revision, o entities.Order, v int64) (entities.Revision, entities.Order, error) {
	if f.failCreates.Add(-1) >= 0 {
		return entities.Revision{}, entities.Order{}, errors.New("revision store unavailable")
	}
	return f.IRevisionRepository.CreateWithOrder(ctx, r, o, v)
}

type harness struct {
	store      *memory.Store
	storage    *memory.ContentStorage
	revRepo    *flakyRevisions
	dispatcher *recordingDispatcher
	notifier   *Notifier
	ledger     *RevisionUseCase
	profiles   *ClientProfileUseCase
	orders     *OrderUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:      memory.NewStore(),
		storage:    memory.NewContentStorage("http://files.local"),
		dispatcher: newRecordingDispatcher(),
	}
	h.revRepo = &flakyRevisions{IRevisionRepository: h.store.Revisions()}
	h.notifier = NewNotifier(h.dispatcher, "http://admin.local")
	h.ledger = NewRevisionUseCase(h.store.Orders(), h.revRepo, h.notifier, fixedClock)
	h.profiles = NewClientProfileUseCase(h.store.ClientProfiles(), h.store.Orders(), fixedClock)
	h.orders = NewOrderUseCase(h.store.Orders(), h.ledger, h.profiles, h.storage, h.notifier, OrderUseCaseConfig{
		UploadAttempts:   3,
		UploadRetryDelay: time.Millisecond,
		RepairAttempts:   1,
		RepairRetryDelay: time.Millisecond,
		Clock:            fixedClock,
	})
	t.Cleanup(h.notifier.Drain)
	return h
}

func fullMeasurements() entities.Measurements {
	return entities.Measurements{
		entities.MeasurementBust:          90,
		entities.MeasurementWaist:         70,
		entities.MeasurementHips:          95,
		entities.MeasurementShoulderWidth: 40,
		entities.MeasurementDressLength:   110,
		entities.MeasurementArmLength:     60,
		entities.MeasurementHeight:        170,
	}
}

func submissionDue(days int) entities.OrderSubmission {
	return entities.OrderSubmission{
		FullName:               "Selam Bekele",
		PhoneNumber:            "+251 911 223344",
		City:                   "Addis Ababa",
		InstagramHandle:        "@selam",
		OrderType:              entities.OrderTypeCustomEventDress,
		Occasion:               entities.OccasionWedding,
		FabricPreference:       "silk",
		EventDate:              refNow.AddDate(0, 0, days+2),
		PreferredDeliveryDate:  refNow.AddDate(0, 0, days),
		Measurements:           fullMeasurements(),
		BodyConcerns:           "none",
		ColorPreference:        "ivory",
		TermsAccepted:          true,
		RevisionPolicyAccepted: true,
	}
}

func (h *harness) createOrder(t *testing.T, customerRef string, days int) entities.Order {
	t.Helper()
	o, err := h.orders.Create(context.Background(), customerRef, submissionDue(days))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func (h *harness) storedOrder(t *testing.T, id string) entities.Order {
	t.Helper()
	o, err := h.store.Orders().GetByID(context.Background(), id)
	if err != nil || o.ID == "" {
		t.Fatalf("order %s not stored: %v", id, err)
	}
	return o
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
