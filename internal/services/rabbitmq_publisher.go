package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// EventsExchange is the durable topic exchange all directory events go to.
const EventsExchange = "showbook.events"

const (
	defaultEventBuffer    = 256
	defaultDialTimeout    = 2 * time.Second
	defaultPublishTimeout = 2 * time.Second
	defaultRedialBackoff  = 5 * time.Second
)

var (
	ErrEventQueueFull   = errors.New("event queue full")
	ErrPublisherClosed  = errors.New("event publisher closed")
	errBrokerBackingOff = errors.New("rabbitmq unavailable, retrying later")
)

type outgoingEvent struct {
	routingKey string
	msg        amqp.Publishing
}

// RabbitMQPublisher publishes persistent JSON messages to EventsExchange.
// Publish only enqueues; a single worker owns the connection, so a slow or
// silent broker never holds up the caller.
type RabbitMQPublisher struct {
	url            string
	dialTimeout    time.Duration
	publishTimeout time.Duration
	redialBackoff  time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan outgoingEvent
	done   chan struct{}

	// owned by the worker goroutine
	conn       *amqp.Connection
	ch         *amqp.Channel
	lastFailed time.Time
}

func NewRabbitMQPublisher(url string) *RabbitMQPublisher {
	return newRabbitMQPublisher(url, defaultEventBuffer, defaultDialTimeout)
}

func newRabbitMQPublisher(url string, buffer int, dialTimeout time.Duration) *RabbitMQPublisher {
	p := &RabbitMQPublisher{
		url:            url,
		dialTimeout:    dialTimeout,
		publishTimeout: defaultPublishTimeout,
		redialBackoff:  defaultRedialBackoff,
		queue:          make(chan outgoingEvent, buffer),
		done:           make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish queues the event and returns immediately. It fails only when the
// queue is full or the publisher is closed.
func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	ev := outgoingEvent{
		routingKey: routingKey,
		msg: amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Type:         routingKey,
			Body:         body,
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("publish %s: %w", routingKey, ErrEventQueueFull)
	}
}

func (p *RabbitMQPublisher) run() {
	defer close(p.done)
	defer p.reset()

	for ev := range p.queue {
		if err := p.send(ev); err != nil {
			logrus.WithField("routing_key", ev.routingKey).WithError(err).Warn("event dropped")
		}
	}
}

func (p *RabbitMQPublisher) send(ev outgoingEvent) error {
	ch, err := p.channel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.publishTimeout)
	defer cancel()
	if err := ch.PublishWithContext(ctx, EventsExchange, ev.routingKey, false, false, ev.msg); err != nil {
		p.reset()
		return fmt.Errorf("publish %s: %w", ev.routingKey, err)
	}
	return nil
}

// channel returns the open channel, dialing and declaring the exchange when
// needed. After a failed dial it refuses to redial until the backoff passes.
func (p *RabbitMQPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	if !p.lastFailed.IsZero() && time.Since(p.lastFailed) < p.redialBackoff {
		return nil, errBrokerBackingOff
	}

	ch, err := p.connect()
	if err != nil {
		p.lastFailed = time.Now()
		return nil, err
	}
	p.lastFailed = time.Time{}
	return ch, nil
}

func (p *RabbitMQPublisher) connect() (*amqp.Channel, error) {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Dial: amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // kind
		true,           // durable
		false,          // autoDelete
		false,          // internal
		false,          // noWait
		nil,            // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	logrus.WithField("exchange", EventsExchange).Info("connected to rabbitmq")
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitMQPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close stops accepting events, flushes what is queued and closes the
// connection.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return nil
}
