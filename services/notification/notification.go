package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-booking/models"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingEvent is published after a booking change commits.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uint      `json:"booking_id"`
	UserID     uint      `json:"user_id"`
	Status     string    `json:"status"`
	RoomIDs    []uint    `json:"room_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers booking events to other systems.
type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

// EventBuilder builds the event for a booking.
type EventBuilder struct {
	eventType string
	booking   *models.Booking
	at        time.Time
}

func NewEventBuilder(eventType string, booking *models.Booking) *EventBuilder {
	return &EventBuilder{eventType: eventType, booking: booking, at: time.Now().UTC()}
}

func (b *EventBuilder) At(t time.Time) *EventBuilder {
	b.at = t.UTC()
	return b
}

func (b *EventBuilder) Build() BookingEvent {
	return BookingEvent{
		Type:       b.eventType,
		BookingID:  b.booking.ID,
		UserID:     b.booking.UserID,
		Status:     b.booking.BookingStatus,
		RoomIDs:    b.booking.RoomIDs(),
		OccurredAt: b.at,
	}
}

// AMQPPublisher publishes persistent JSON messages to a durable queue.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue}
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("amqp dial: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}
	p.ch = ch
	return ch, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops events.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event BookingEvent) error {
	return nil
}

// RecordingPublisher keeps events in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []BookingEvent
}

func (r *RecordingPublisher) Publish(ctx context.Context, event BookingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
	return nil
}

// Types returns the recorded event types in order.
func (r *RecordingPublisher) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		types = append(types, e.Type)
	}
	return types
}
