package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

const (
	DefaultQueueSize = 256
	DefaultTimeout   = 5 * time.Second

	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

// Config параметры очереди уведомлений
type Config struct {
	QueueSize int
	Timeout   time.Duration
}

// Outbox ограниченная очередь уведомлений с фоновым воркером
// Notify никогда не блокирует вызывающего: при переполнении событие отбрасывается.
// Доставка выполняется один раз с таймаутом, без повторов
type Outbox struct {
	sink     Sink
	queue    chan domain.Event
	timeout  time.Duration
	recorder Recorder
	logger   Logger

	wg sync.WaitGroup
}

// NewOutbox создает очередь уведомлений
func NewOutbox(sink Sink, cfg Config, recorder Recorder, logger Logger) *Outbox {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Outbox{
		sink:     sink,
		queue:    make(chan domain.Event, cfg.QueueSize),
		timeout:  cfg.Timeout,
		recorder: recorder,
		logger:   logger,
	}
}

// Notify ставит событие в очередь
func (o *Outbox) Notify(event domain.Event) {
	select {
	case o.queue <- event:
	default:
		o.recorder.ObserveNotification(event.Type, OutcomeDropped)
		o.logger.Warn("Notify: queue full, dropping %s for session=%s", event.Type, event.SessionID)
	}
}

// Start запускает воркер доставки; он завершается при отмене ctx
func (o *Outbox) Start(ctx context.Context) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.run(ctx)
	}()
}

// Wait ждет завершения воркера
func (o *Outbox) Wait() {
	o.wg.Wait()
}

func (o *Outbox) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			o.drain()
			return
		case event := <-o.queue:
			o.deliver(ctx, event)
		}
	}
}

// drain пытается доставить уже поставленные события перед остановкой
func (o *Outbox) drain() {
	for {
		select {
		case event := <-o.queue:
			o.deliver(context.Background(), event)
		default:
			return
		}
	}
}

func (o *Outbox) deliver(parent context.Context, event domain.Event) {
	ctx, cancel := context.WithTimeout(parent, o.timeout)
	defer cancel()

	if err := o.sink.Deliver(ctx, event); err != nil {
		o.recorder.ObserveNotification(event.Type, OutcomeFailed)
		o.logger.Warn("deliver: %s for session=%s failed: %v", event.Type, event.SessionID, err)
		return
	}
	o.recorder.ObserveNotification(event.Type, OutcomeDelivered)
}

// NopSink отбрасывает события; используется, когда уведомления выключены
type NopSink struct {
	Logger Logger
}

// Deliver пишет событие в лог и ничего не отправляет
func (s NopSink) Deliver(_ context.Context, event domain.Event) error {
	if s.Logger != nil {
		s.Logger.Info("Notification %s for session=%s skipped: notifications disabled", event.Type, event.SessionID)
	}
	return nil
}
