package modify_appointment

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
)

// ModifyAppointmentRequest HTTP request model
type ModifyAppointmentRequest struct {
	Identifier string `json:"identifier"` // ID записи, дата или пусто
	NewDate    string `json:"new_date"`   // Пусто - дата не меняется
	NewTime    string `json:"new_time"`   // Пусто - время не меняется
}

// ModifyAppointmentResponse HTTP response model
type ModifyAppointmentResponse struct {
	handlers.ToolResponse
	Appointment *handlers.AppointmentResponse `json:"appointment,omitempty"`
}
