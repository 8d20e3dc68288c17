package retrieve_appointments

import (
	"context"

	retrieveAppointments "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/retrieve_appointments"
)

type RetrieveAppointmentsUseCase interface {
	Execute(ctx context.Context, req *retrieveAppointments.Request) (*retrieveAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
