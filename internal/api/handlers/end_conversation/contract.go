package end_conversation

import (
	"context"

	endConversation "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/end_conversation"
)

type EndConversationUseCase interface {
	Execute(ctx context.Context, req *endConversation.Request) *endConversation.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
