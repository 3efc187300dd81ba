package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "atelier_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotifier(t *testing.T) {
	t.Run("failures are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		n := NewNotifier(d, "")

		d.EXPECT().NotifyCustomer(gomock.Any(), "cust-1", "hello").Return(errors.New("bot blocked"))
		d.EXPECT().NotifyOperators(gomock.Any(), "ops").Return(errors.New("timeout"))

		n.Customer("cust-1", "hello")
		n.Operators("ops")
		n.Drain()
	})

	t.Run("empty customer ref is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		n := NewNotifier(d, "")

		n.Customer("", "hello")
		n.Drain()
	})

	t.Run("panics are contained", func(t *testing.T) {
		n := NewNotifier(nil, "")
		n.Go(func() { panic("boom") })
		n.Drain()
	})

	t.Run("nil notifier is inert", func(t *testing.T) {
		var n *Notifier
		n.Customer("c", "m")
		n.Operators("m")
		n.Drain()
		if n.AdminURL() != "" {
			t.Fatalf("expected empty admin url")
		}

		done := make(chan struct{})
		n.Go(func() { close(done) })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("background task did not run")
		}
	})

	t.Run("dispatch carries a deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		n := NewNotifier(d, "")

		d.EXPECT().NotifyOperators(gomock.Any(), "ops").DoAndReturn(func(ctx context.Context, _ string) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected a deadline on the dispatch context")
			}
			return nil
		})
		n.Operators("ops")
		n.Drain()
	})
}
