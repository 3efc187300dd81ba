// Package notifications delivers engine messages to the chat bot that owns
// the customer and operator conversations.
package notifications

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"atelier_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	RoutingKeyCustomer  = "notify.customer"
	RoutingKeyOperators = "notify.operators"

	AudienceCustomer  = "customer"
	AudienceOperators = "operators"
)

// Envelope is the JSON body published for every notification.
type Envelope struct {
	ID          string    `json:"id"`
	Audience    string    `json:"audience"`
	CustomerRef string    `json:"customer_ref,omitempty"`
	ChatIDs     []string  `json:"chat_ids,omitempty"`
	Message     string    `json:"message"`
	ParseMode   string    `json:"parse_mode"`
	SentAt      time.Time `json:"sent_at"`
}

// Publisher is satisfied by *amqp.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPDispatcher publishes notifications to a topic exchange.
type AMQPDispatcher struct {
	mu          sync.Mutex
	publisher   Publisher
	exchange    string
	operatorIDs []string
	conn        *amqp.Connection
	now         func() time.Time
}

var _ interfaces.INotificationDispatcher = (*AMQPDispatcher)(nil)

// DialAMQPDispatcher connects to url and declares exchange as a durable
// topic exchange.
func DialAMQPDispatcher(url, exchange string, operatorIDs []string) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open amqp channel")
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}
	log.WithField("exchange", exchange).Info("[notifications][amqp] connected")

	d := NewAMQPDispatcher(ch, exchange, operatorIDs)
	d.conn = conn
	return d, nil
}

func NewAMQPDispatcher(p Publisher, exchange string, operatorIDs []string) *AMQPDispatcher {
	return &AMQPDispatcher{
		publisher:   p,
		exchange:    exchange,
		operatorIDs: append([]string{}, operatorIDs...),
		now:         time.Now,
	}
}

func (d *AMQPDispatcher) NotifyCustomer(ctx context.Context, customerRef, message string) error {
	return d.publish(ctx, RoutingKeyCustomer, Envelope{
		Audience:    AudienceCustomer,
		CustomerRef: customerRef,
		Message:     message,
	})
}

func (d *AMQPDispatcher) NotifyOperators(ctx context.Context, message string) error {
	if len(d.operatorIDs) == 0 {
		log.Debug("[notifications][amqp] no operator chat ids configured; skipping")
		return nil
	}
	return d.publish(ctx, RoutingKeyOperators, Envelope{
		Audience: AudienceOperators,
		ChatIDs:  d.operatorIDs,
		Message:  message,
	})
}

func (d *AMQPDispatcher) publish(ctx context.Context, key string, env Envelope) error {
	env.ID = uuid.NewString()
	env.ParseMode = "HTML"
	env.SentAt = d.now().UTC()
	body, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "encode notification")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	err = d.publisher.PublishWithContext(ctx, d.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.ID,
		Timestamp:    env.SentAt,
		Body:         body,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", key)
	}
	return nil
}

func (d *AMQPDispatcher) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
