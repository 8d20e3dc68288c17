package end_conversation

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/costs"
)

// Request модель запроса на завершение разговора
type Request struct {
	SessionID string         // ID сессии разговора
	Caller    *domain.Caller // Абонент сессии, nil если не идентифицирован
	Usage     costs.Usage    // Счетчики использования LLM/TTS/STT
}

// Response модель ответа с итогом разговора
type Response struct {
	Summary   domain.ConversationSummary // Итог разговора
	Persisted bool                       // Итог сохранен в хранилище
}
