package notifications

import (
	"context"

	"atelier_orders/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// LogDispatcher writes notifications to the log. It is used when no broker
// is configured.
type LogDispatcher struct {
	logger log.FieldLogger
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger log.FieldLogger) *LogDispatcher {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) NotifyCustomer(_ context.Context, customerRef, message string) error {
	d.logger.WithFields(log.Fields{"audience": AudienceCustomer, "customer_ref": customerRef, "message": message}).Info("[notifications][log] notify")
	return nil
}

func (d *LogDispatcher) NotifyOperators(_ context.Context, message string) error {
	d.logger.WithFields(log.Fields{"audience": AudienceOperators, "message": message}).Info("[notifications][log] notify")
	return nil
}
