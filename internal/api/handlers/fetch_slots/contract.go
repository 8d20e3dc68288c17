package fetch_slots

import (
	"context"

	fetchSlots "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/fetch_slots"
)

type FetchSlotsUseCase interface {
	Execute(ctx context.Context, req *fetchSlots.Request) (*fetchSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
