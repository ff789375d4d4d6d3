package messaging

import (
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, msg)
	return args.Error(0)
}

func TestEventPublisher_Publish(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Persistent JSON Envelope", func(t *testing.T) {
		channel := new(MockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "scan-events", mock.Anything).
			Run(func(args mock.Arguments) { published = args.Get(3).(amqp091.Publishing) }).
			Return(nil)

		publisher := newEventPublisher(channel, "scan-events", zap.NewNop())
		publisher.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }

		err := publisher.Publish(ctx, constvars.EventScanAnalyzed, map[string]string{"patient_id": "P-1"})
		require.NoError(t, err)

		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, constvars.EventScanAnalyzed, published.Type)

		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(published.Body, &event))
		assert.Equal(t, constvars.EventScanAnalyzed, event["type"])
		assert.Equal(t, "req-1", event["request_id"])
		assert.Equal(t, "2024-06-01T08:00:00Z", event["occurred_at"])
		assert.Equal(t, map[string]interface{}{"patient_id": "P-1"}, event["payload"])
	})

	t.Run("Broker Failure", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(amqp091.ErrClosed)

		err := newEventPublisher(channel, "scan-events", zap.NewNop()).Publish(ctx, constvars.EventScanAnalyzed, nil)
		assert.True(t, errors.Is(err, exceptions.ErrUpstreamUnavailable))
		assert.True(t, errors.Is(err, amqp091.ErrClosed))
	})
}
