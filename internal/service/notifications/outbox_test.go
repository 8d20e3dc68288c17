package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []domain.Event
	err       error
	block     chan struct{}
}

func (s *recordingSink) Deliver(ctx context.Context, event domain.Event) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, event)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newOutcomeRecorder() *outcomeRecorder {
	return &outcomeRecorder{outcomes: make(map[string]int)}
}

func (r *outcomeRecorder) ObserveNotification(_ string, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[outcome]++
}

func (r *outcomeRecorder) get(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

func event(sessionID string) domain.Event {
	return domain.NewEvent(domain.EventAppointmentBooked, sessionID, nil, time.Now())
}

func TestOutbox_DeliversQueuedEvents(t *testing.T) {
	sink := &recordingSink{}
	recorder := newOutcomeRecorder()
	outbox := NewOutbox(sink, Config{}, recorder, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	outbox.Start(ctx)

	outbox.Notify(event("s1"))
	outbox.Notify(event("s2"))

	assert.Eventually(t, func() bool { return sink.count() == 2 }, time.Second, 10*time.Millisecond)

	cancel()
	outbox.Wait()
	assert.Equal(t, 2, recorder.get(OutcomeDelivered))
}

func TestOutbox_DropsWhenQueueFull(t *testing.T) {
	sink := &recordingSink{}
	recorder := newOutcomeRecorder()
	outbox := NewOutbox(sink, Config{QueueSize: 1}, recorder, logger.NewNop())

	// воркер не запущен: первое событие занимает очередь, второе отбрасывается
	outbox.Notify(event("s1"))
	outbox.Notify(event("s2"))

	assert.Equal(t, 1, recorder.get(OutcomeDropped))
}

func TestOutbox_DeliveryTimeoutDoesNotBlockProducers(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	recorder := newOutcomeRecorder()
	outbox := NewOutbox(sink, Config{QueueSize: 4, Timeout: 20 * time.Millisecond}, recorder, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	outbox.Start(ctx)

	started := time.Now()
	outbox.Notify(event("s1"))
	assert.Less(t, time.Since(started), 10*time.Millisecond)

	assert.Eventually(t, func() bool { return recorder.get(OutcomeFailed) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	outbox.Wait()
}

func TestOutbox_FailedDeliveryIsRecorded(t *testing.T) {
	sink := &recordingSink{err: errors.New("no participant")}
	recorder := newOutcomeRecorder()
	outbox := NewOutbox(sink, Config{}, recorder, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	outbox.Start(ctx)
	outbox.Notify(event("s1"))

	assert.Eventually(t, func() bool { return recorder.get(OutcomeFailed) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	outbox.Wait()
	require.Zero(t, sink.count())
}

func TestOutbox_DrainsOnShutdown(t *testing.T) {
	sink := &recordingSink{}
	outbox := NewOutbox(sink, Config{}, newOutcomeRecorder(), logger.NewNop())

	outbox.Notify(event("s1"))
	outbox.Notify(event("s2"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outbox.Start(ctx)
	outbox.Wait()

	assert.Equal(t, 2, sink.count())
}
