package book_appointment

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Date     string  `json:"date"`      // "tomorrow", "next monday", "2026-10-19"
	Time     string  `json:"time"`      // "2pm", "14:30", "noon"
	UserName string  `json:"user_name"` // Имя абонента
	Notes    *string `json:"notes,omitempty"`
}

// BookAppointmentResponse HTTP response model
type BookAppointmentResponse struct {
	handlers.ToolResponse
	Appointment *handlers.AppointmentResponse `json:"appointment,omitempty"`
}
