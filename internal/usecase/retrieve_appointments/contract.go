package retrieve_appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// AppointmentLedger интерфейс журнала записей
type AppointmentLedger interface {
	ListForContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
