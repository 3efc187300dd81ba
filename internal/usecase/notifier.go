package usecase

import (
	"context"
	"sync"
	"time"

	"atelier_orders/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const notificationTimeout = 15 * time.Second

// Notifier runs notification sends and background repairs off the request
// path. Failures are logged and never reach the caller. Drain blocks until
// everything started so far has finished.
type Notifier struct {
	dispatcher interfaces.INotificationDispatcher
	adminURL   string
	wg         sync.WaitGroup
}

func NewNotifier(dispatcher interfaces.INotificationDispatcher, adminURL string) *Notifier {
	return &Notifier{dispatcher: dispatcher, adminURL: adminURL}
}

func (n *Notifier) Customer(customerRef, message string) {
	if n == nil || n.dispatcher == nil || customerRef == "" {
		return
	}
	n.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		if err := n.dispatcher.NotifyCustomer(ctx, customerRef, message); err != nil {
			log.WithError(err).WithField("customer_ref", customerRef).Warn("[notify][usecase] customer notification failed")
		}
	})
}

func (n *Notifier) Operators(message string) {
	if n == nil || n.dispatcher == nil {
		return
	}
	n.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		if err := n.dispatcher.NotifyOperators(ctx, message); err != nil {
			log.WithError(err).Warn("[notify][usecase] operator notification failed")
		}
	})
}

// Go runs fn in a tracked goroutine. A nil notifier runs it untracked.
func (n *Notifier) Go(fn func()) {
	if n == nil {
		go fn()
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("[notify][usecase] background task panicked")
			}
		}()
		fn()
	}()
}

func (n *Notifier) Drain() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) AdminURL() string {
	if n == nil {
		return ""
	}
	return n.adminURL
}
