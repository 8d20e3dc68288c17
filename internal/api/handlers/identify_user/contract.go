package identify_user

import (
	"context"

	identifyUser "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/identify_user"
)

type IdentifyUserUseCase interface {
	Execute(ctx context.Context, req *identifyUser.Request) (*identifyUser.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
