package modify_appointment

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Request модель запроса на перенос записи
type Request struct {
	SessionID        string         // ID сессии разговора
	Caller           *domain.Caller // Абонент сессии, nil если не идентифицирован
	IdentifierPhrase string         // ID записи, дата или пустая строка
	NewDatePhrase    string         // Новая дата; пустая - дата не меняется
	NewTimePhrase    string         // Новое время; пустое - время не меняется
}

// Response модель ответа с перенесенной записью
type Response struct {
	Appointment *domain.Appointment // Запись после переноса
	Previous    domain.Appointment  // Запись до переноса
}
