package fetch_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	Generate(from time.Time, horizonDays int) []domain.Slot
	Suggest(now time.Time, preferred string) []domain.Slot
}

// AvailabilityReader интерфейс чтения занятых слотов
type AvailabilityReader interface {
	TakenSlots(ctx context.Context, from, to types.Date) (map[domain.SlotKey]struct{}, error)
}

// DateInterpreter интерфейс разбора даты из фразы
type DateInterpreter interface {
	InterpretDate(phrase string, reference time.Time) (types.Date, error)
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
