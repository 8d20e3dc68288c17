package retrieve_appointments

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// RetrieveAppointmentsRequest HTTP request model
type RetrieveAppointmentsRequest struct {
	IncludeCancelled bool `json:"include_cancelled,omitempty"`
}

// RetrieveAppointmentsResponse HTTP response model
type RetrieveAppointmentsResponse struct {
	handlers.ToolResponse
	Appointments []*handlers.AppointmentResponse `json:"appointments"`
}

func fromAppointments(appts []*domain.Appointment) []*handlers.AppointmentResponse {
	result := make([]*handlers.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		result = append(result, handlers.FromAppointment(a))
	}
	return result
}
