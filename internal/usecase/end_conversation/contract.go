package end_conversation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/costs"
)

// AppointmentLedger интерфейс журнала записей
type AppointmentLedger interface {
	ListForContact(ctx context.Context, contact string, includeCancelled bool) ([]*domain.Appointment, error)
}

// SummaryRepository интерфейс репозитория итогов разговора
type SummaryRepository interface {
	Insert(ctx context.Context, s *domain.ConversationSummary) (*domain.ConversationSummary, error)
}

// CostCalculator интерфейс расчета стоимости разговора
type CostCalculator interface {
	Calculate(u costs.Usage) domain.CostBreakdown
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
