package service_test

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type publishedEvent struct {
	name    string
	key     string
	payload any
}

// recordingPublisher captures events published asynchronously by the services.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	ch     chan publishedEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{ch: make(chan publishedEvent, 16)}
}

func (r *recordingPublisher) Publish(_ context.Context, event, key string, payload any) error {
	e := publishedEvent{name: event, key: key, payload: payload}
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	r.ch <- e
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
