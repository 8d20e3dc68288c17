package modify_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// AppointmentLedger интерфейс журнала записей
type AppointmentLedger interface {
	ListForContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error)
	Modify(ctx context.Context, id domain.AppointmentID, date types.Date, t types.TimeString) (*domain.Appointment, error)
}

// IdentifierResolver интерфейс выбора записи по фразе абонента
type IdentifierResolver interface {
	Resolve(phrase string, candidates []*domain.Appointment) *domain.Appointment
}

// DateTimeInterpreter интерфейс разбора даты и времени из фраз
type DateTimeInterpreter interface {
	InterpretDate(phrase string, reference time.Time) (types.Date, error)
	InterpretTime(phrase string) (types.TimeString, error)
}

// PolicyChecker интерфейс проверки слота против политики расписания
type PolicyChecker interface {
	IsBookable(date types.Date, t types.TimeString, now time.Time) bool
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
