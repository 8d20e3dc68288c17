package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// AppointmentLedger интерфейс журнала записей
type AppointmentLedger interface {
	Create(ctx context.Context, req appointments.CreateRequest) (*domain.Appointment, error)
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
