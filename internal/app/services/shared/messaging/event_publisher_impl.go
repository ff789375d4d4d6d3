package messaging

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher uses.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Event is the envelope written to the queue.
type Event struct {
	Type       string      `json:"type"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt string      `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type eventPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
	now     func() time.Time
}

// NewEventPublisher opens a channel on the connection and declares the
// durable queue events are published to.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return newEventPublisher(channel, queue, logger), nil
}

func newEventPublisher(channel channelPublisher, queue string, logger *zap.Logger) *eventPublisher {
	return &eventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
		now:     time.Now,
	}
}

func (s *eventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("eventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	body, err := json.Marshal(Event{
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: s.now().UTC().Format(time.RFC3339),
		Payload:    payload,
	})
	if err != nil {
		s.Log.Error("eventPublisher.Publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         eventType,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("eventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("eventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}

// noopPublisher drops events. It is used when no broker is configured.
type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (s *noopPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	s.Log.Debug("noopPublisher.Publish dropping event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("event_type", eventType),
	)
	return nil
}
