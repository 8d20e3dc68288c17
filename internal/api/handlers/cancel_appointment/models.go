package cancel_appointment

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Identifier string `json:"identifier"` // ID записи, дата ("next monday") или пусто
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	handlers.ToolResponse
	Appointment *handlers.AppointmentResponse `json:"appointment,omitempty"`
}
