package handlers

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
	Display string `json:"display"`
}

// CallerResponse HTTP модель абонента
type CallerResponse struct {
	ContactNumber string  `json:"contact_number"`
	Name          *string `json:"name,omitempty"`
	IsNew         bool    `json:"is_new"`
}

// FromAppointment конвертирует запись в HTTP модель
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:      a.ID.String(),
		Date:    a.Date.String(),
		Time:    a.Time.String(),
		Status:  string(a.Status),
		Display: a.Display(),
	}
}

// FromCaller конвертирует абонента в HTTP модель
func FromCaller(c domain.Caller) *CallerResponse {
	return &CallerResponse{
		ContactNumber: c.ContactNumber,
		Name:          c.Name,
		IsNew:         c.IsNew,
	}
}
