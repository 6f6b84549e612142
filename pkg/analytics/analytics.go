// Package analytics publishes customer interaction events to Kafka. The
// web app used to inject third-party analytics tags; the BFF emits the
// same signals server-side instead.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

// Event names emitted by the customer flows.
const (
	EventVehicleViewed    = "vehicle_viewed"
	EventSearchPerformed  = "search_performed"
	EventBookingStarted   = "booking_started"
	EventWizardStep       = "wizard_step_completed"
	EventPriceCalculated  = "price_calculated"
	EventBookingCreated   = "booking_created"
	EventPaymentInitiated = "payment_initiated"
)

type Event struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SessionID string         `json:"sessionId,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Publisher is what the handlers depend on; tests swap in a recorder.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // keep a session's events ordered
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("analytics publish failed", "detail", msg)
		}),
	}

	return &KafkaPublisher{writer: writer, log: log}
}

// Publish is fire-and-forget: analytics must never affect a customer
// request, so failures are logged and swallowed.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to marshal analytics event", "event", event.Name, "error", err)
		return
	}

	key := event.SessionID
	if key == "" {
		key = event.ID
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.Timestamp,
	}); err != nil {
		p.log.Error("failed to publish analytics event", "event", event.Name, "error", err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop satisfies Publisher for tests and local development without Kafka.
type Noop struct{}

func (Noop) Publish(ctx context.Context, event Event) {}
func (Noop) Close() error                             { return nil }
