package notifications

import (
	"context"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// Sink получатель уведомлений (frontend webhook, kafka)
type Sink interface {
	Deliver(ctx context.Context, event domain.Event) error
}

// Recorder учитывает исход доставки
type Recorder interface {
	ObserveNotification(event, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
