package usecase

import (
	"sync"

	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// maxWriteAttempts bounds read-modify-write retries after a lost
// conditional write.
const maxWriteAttempts = 5

type refMutex struct {
	sync.Mutex
	refs int
}

// orderLocks serialises mutations of one order within this process.
// Conditional writes in the repositories cover other processes.
type orderLocks struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: map[string]*refMutex{}}
}

func (l *orderLocks) lock(orderID string) func() {
	l.mu.Lock()
	m, ok := l.locks[orderID]
	if !ok {
		m = &refMutex{}
		l.locks[orderID] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, orderID)
		}
		l.mu.Unlock()
	}
}

// run holds the order's lock and calls fn until it stops failing with
// ErrConcurrentUpdate or the attempts run out. fn must re-read what it
// writes.
func (l *orderLocks) run(orderID string, fn func() error) error {
	unlock := l.lock(orderID)
	defer unlock()

	var err error
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		if err = fn(); !errors.Is(err, interfaces.ErrConcurrentUpdate) {
			return err
		}
	}
	return err
}
