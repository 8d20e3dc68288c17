package fetch_slots

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	SessionID     string // ID сессии разговора
	PreferredDate string // Желаемая дата в свободной форме (опционально)
}

// Response модель ответа со свободными слотами
type Response struct {
	Slots            []domain.Slot // Не больше MaxSuggestedSlots слотов
	TotalAvailable   int           // Количество подходящих слотов до ограничения
	PreferredDate    *types.Date   // Распознанная желаемая дата
	PreferredMatched bool          // На желаемую дату есть свободные слоты
	Degraded         bool          // Занятость не проверена (хранилище недоступно)
}
