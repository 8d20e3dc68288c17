package identify_user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	identifyUser "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/identify_user"
)

const (
	msgInvalidRequestBody = "I didn't catch that. Could you tell me your phone number again?"
	msgInvalidPhone       = "The phone number seems invalid. Could you please provide it again?"
	msgWelcomeBack        = "Welcome back, %s! How can I help you today?"
	msgNewCaller          = "I don't have your information yet. May I have your name please?"
	msgLookupFailed       = "I'm having trouble looking up your information. Could you try again?"
	msgSessionFailed      = "I'm having trouble saving your details. Could you try again?"

	valuedCustomer = "valued customer"
)

type Handler struct {
	useCase  IdentifyUserUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase IdentifyUserUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/identify_user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req IdentifyUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/identify_user - Invalid request body: session=%s, error=%v", sessionID, err)
		h.respond(w, IdentifyUserResponse{ToolResponse: handlers.ToolFail(msgInvalidRequestBody)})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &identifyUser.Request{
		SessionID:   sessionID,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, identifyUser.ErrInvalidPhone):
			h.logger.Warn("POST /tools/identify_user - Invalid phone: session=%s, error=%v", sessionID, err)
			h.respond(w, IdentifyUserResponse{ToolResponse: handlers.ToolFail(msgInvalidPhone)})
		default:
			h.logger.Error("POST /tools/identify_user - Failed to identify user: session=%s, error=%v", sessionID, err)
			h.respond(w, IdentifyUserResponse{ToolResponse: handlers.ToolFail(msgLookupFailed)})
		}
		return
	}

	if err := h.sessions.Save(r.Context(), sessionID, result.Caller); err != nil {
		h.logger.Error("POST /tools/identify_user - Failed to save session: session=%s, error=%v", sessionID, err)
		h.respond(w, IdentifyUserResponse{ToolResponse: handlers.ToolFail(msgSessionFailed)})
		return
	}

	h.logger.Info("POST /tools/identify_user - Caller identified: session=%s, new=%t", sessionID, result.Caller.IsNew)
	h.respond(w, IdentifyUserResponse{
		ToolResponse: handlers.ToolOK(greeting(result.Caller)),
		User:         handlers.FromCaller(result.Caller),
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp IdentifyUserResponse) {
	h.tools.ObserveTool(domain.ToolIdentifyUser, resp.Success)
	handlers.RespondTool(w, resp)
}

func greeting(caller domain.Caller) string {
	if caller.IsNew {
		return msgNewCaller
	}
	name := caller.DisplayName()
	if name == "" {
		name = valuedCustomer
	}
	return fmt.Sprintf(msgWelcomeBack, name)
}
