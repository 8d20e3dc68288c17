package identify_user

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Request модель запроса на идентификацию абонента
type Request struct {
	SessionID   string // ID сессии разговора
	PhoneNumber string // Номер телефона в свободной форме
}

// Response модель ответа с идентифицированным абонентом
type Response struct {
	Caller  domain.Caller       // Абонент текущей сессии
	Profile *domain.UserProfile // Профиль, если абонент звонил раньше
}
