package cancel_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// AppointmentLedger интерфейс журнала записей
type AppointmentLedger interface {
	ListForContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id domain.AppointmentID) (bool, error)
}

// IdentifierResolver интерфейс выбора записи по фразе абонента
type IdentifierResolver interface {
	Resolve(phrase string, candidates []*domain.Appointment) *domain.Appointment
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	Notify(event domain.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
