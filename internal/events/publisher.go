// Package events publishes domain events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"alcyxob/fitness-tracker/internal/metrics"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// Event names, also used as default topic names.
const (
	CheckInRecorded = "readiness.checkin.recorded"
	GoalCompleted   = "goal.completed"
)

// Publisher delivers a single event. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event, key string, payload any) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }

// KafkaPublisher writes JSON-encoded events, lazily creating one writer per topic.
type KafkaPublisher struct {
	brokers []string
	topics  map[string]string // event name -> topic

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher. Events missing from topics are
// written to a topic named after the event.
func NewKafkaPublisher(brokers []string, topics map[string]string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		topics:  topics,
		writers: make(map[string]*kafka.Writer),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event, key string, payload any) error {
	topic := p.topicFor(event)

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	}
	if err := p.writerForTopic(topic).WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(topic, "error").Inc()
		return fmt.Errorf("failed to publish %s event: %w", event, err)
	}
	metrics.EventsPublishedTotal.WithLabelValues(topic, "ok").Inc()
	return nil
}

func (p *KafkaPublisher) topicFor(event string) string {
	if topic, ok := p.topics[event]; ok && topic != "" {
		return topic
	}
	return event
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(p.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// AsyncPublisher delivers events in the background through another Publisher.
// Close waits for in-flight deliveries before closing the underlying publisher.
type AsyncPublisher struct {
	next    Publisher
	timeout time.Duration

	mu       sync.RWMutex // guards closed against inflight.Add
	closed   bool
	inflight sync.WaitGroup
}

func NewAsyncPublisher(next Publisher) *AsyncPublisher {
	return &AsyncPublisher{next: next, timeout: 5 * time.Second}
}

// Publish delivers synchronously.
func (a *AsyncPublisher) Publish(ctx context.Context, event, key string, payload any) error {
	return a.next.Publish(ctx, event, key, payload)
}

// PublishAsync returns immediately. Events fired after Close are dropped.
func (a *AsyncPublisher) PublishAsync(event, key string, payload any) {
	a.mu.RLock()
	if a.closed {
		a.mu.RUnlock()
		log.Warnf("event %s for %s dropped: publisher closed", event, key)
		return
	}
	a.inflight.Add(1)
	a.mu.RUnlock()

	go func() {
		defer a.inflight.Done()
		deliver(a.next, a.timeout, event, key, payload)
	}()
}

func (a *AsyncPublisher) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	a.inflight.Wait()
	return a.next.Close()
}

// PublishAsync fires an event without blocking the caller. Delivery failures are
// logged and never retried. Only an AsyncPublisher tracks the delivery for Close.
func PublishAsync(p Publisher, event, key string, payload any) {
	if a, ok := p.(*AsyncPublisher); ok {
		a.PublishAsync(event, key, payload)
		return
	}
	go deliver(p, 5*time.Second, event, key, payload)
}

func deliver(p Publisher, timeout time.Duration, event, key string, payload any) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := p.Publish(ctx, event, key, payload); err != nil {
		log.Warnf("event %s for %s not delivered: %v", event, key, err)
	}
}
