package cancel_appointment

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Request модель запроса на отмену записи
type Request struct {
	SessionID        string         // ID сессии разговора
	Caller           *domain.Caller // Абонент сессии, nil если не идентифицирован
	IdentifierPhrase string         // ID записи, дата или пустая строка
}

// Response модель ответа с отмененной записью
type Response struct {
	Appointment *domain.Appointment // Запись в статусе cancelled
}
