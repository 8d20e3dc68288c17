package retrieve_appointments

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Request модель запроса записей абонента
type Request struct {
	SessionID        string         // ID сессии разговора
	Caller           *domain.Caller // Абонент сессии, nil если не идентифицирован
	IncludeCancelled bool           // Включать отмененные записи
}

// Response модель ответа с записями абонента
type Response struct {
	Appointments []*domain.Appointment // По возрастанию даты и времени
}
