package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error)
	FindActive(ctx context.Context, date types.Date, t types.TimeString) (*domain.Appointment, error)
	FindActiveInRange(ctx context.Context, from, to types.Date) ([]*domain.Appointment, error)
	FindByContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id domain.AppointmentID, status domain.AppointmentStatus) (*domain.Appointment, error)
	UpdateDateTime(ctx context.Context, id domain.AppointmentID, date types.Date, t types.TimeString) (*domain.Appointment, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Find(ctx context.Context, contact string) (*domain.UserProfile, error)
	Insert(ctx context.Context, p *domain.UserProfile) (bool, error)
}

// PolicyChecker проверка слота против политики расписания
type PolicyChecker interface {
	IsBookable(date types.Date, t types.TimeString, now time.Time) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// ConflictRecorder учитывает отказы из-за занятого слота
type ConflictRecorder interface {
	IncSlotConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
