package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type stubPublisher struct {
	sent []published
	err  error
}

func (s *stubPublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestAMQPDispatcher_NotifyCustomer(t *testing.T) {
	pub := &stubPublisher{}
	d := NewAMQPDispatcher(pub, "atelier.notifications", nil)
	d.now = func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) }

	require.NoError(t, d.NotifyCustomer(context.Background(), "tg_42", "<b>hi</b>"))
	require.Len(t, pub.sent, 1)

	p := pub.sent[0]
	assert.Equal(t, "atelier.notifications", p.exchange)
	assert.Equal(t, RoutingKeyCustomer, p.key)
	assert.Equal(t, amqp.Persistent, p.msg.DeliveryMode)

	var env Envelope
	require.NoError(t, json.Unmarshal(p.msg.Body, &env))
	assert.Equal(t, AudienceCustomer, env.Audience)
	assert.Equal(t, "tg_42", env.CustomerRef)
	assert.Equal(t, "<b>hi</b>", env.Message)
	assert.Equal(t, "HTML", env.ParseMode)
	assert.Equal(t, env.ID, p.msg.MessageId)
}

func TestAMQPDispatcher_NotifyOperators(t *testing.T) {
	t.Run("fans out to configured chats", func(t *testing.T) {
		pub := &stubPublisher{}
		d := NewAMQPDispatcher(pub, "x", []string{"100", "200"})

		require.NoError(t, d.NotifyOperators(context.Background(), "new order"))
		require.Len(t, pub.sent, 1)
		var env Envelope
		require.NoError(t, json.Unmarshal(pub.sent[0].msg.Body, &env))
		assert.Equal(t, []string{"100", "200"}, env.ChatIDs)
		assert.Equal(t, RoutingKeyOperators, pub.sent[0].key)
	})

	t.Run("no operators is a no-op", func(t *testing.T) {
		pub := &stubPublisher{}
		d := NewAMQPDispatcher(pub, "x", nil)
		require.NoError(t, d.NotifyOperators(context.Background(), "new order"))
		assert.Empty(t, pub.sent)
	})
}

func TestAMQPDispatcher_PublishError(t *testing.T) {
	d := NewAMQPDispatcher(&stubPublisher{err: errors.New("channel closed")}, "x", nil)
	err := d.NotifyCustomer(context.Background(), "tg_42", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), RoutingKeyCustomer)
}

func TestLogDispatcher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := NewLogDispatcher(logger)

	require.NoError(t, d.NotifyCustomer(context.Background(), "tg_42", "hello"))
	require.NoError(t, d.NotifyOperators(context.Background(), "ops"))

	require.Len(t, hook.AllEntries(), 2)
	first := hook.AllEntries()[0]
	assert.Equal(t, log.InfoLevel, first.Level)
	assert.Equal(t, "tg_42", first.Data["customer_ref"])
	assert.Equal(t, AudienceOperators, hook.LastEntry().Data["audience"])
}
