package interfaces

import "context"

// INotificationDispatcher delivers messages to customers and operators.
//
// Callers treat both methods as fire-and-forget; implementations may retry
// internally.
type INotificationDispatcher interface {
	NotifyCustomer(ctx context.Context, customerRef, message string) error
	NotifyOperators(ctx context.Context, message string) error
}
