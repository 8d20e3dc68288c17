package book_appointment

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Request модель запроса на запись
type Request struct {
	SessionID  string         // ID сессии разговора
	Caller     *domain.Caller // Абонент сессии, nil если не идентифицирован
	DatePhrase string         // Дата в свободной форме ("tomorrow", "next monday")
	TimePhrase string         // Время в свободной форме ("2pm", "noon")
	UserName   string         // Имя абонента
	Notes      *string        // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment // Созданная запись
	Caller      domain.Caller       // Абонент с учетом названного имени
}
