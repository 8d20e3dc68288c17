package retrieve_appointments

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	retrieveAppointments "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/retrieve_appointments"
)

const (
	msgNotIdentified   = "I need your phone number first to look up your appointments. What's your phone number?"
	msgNoAppointments  = "You don't have any upcoming appointments. Would you like to book one?"
	msgOneAppointment  = "You have 1 upcoming appointment."
	msgAppointments    = "You have %d upcoming appointments."
	msgRetrievalFailed = "I'm having trouble retrieving your appointments. Please try again."
)

type Handler struct {
	useCase  RetrieveAppointmentsUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase RetrieveAppointmentsUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/retrieve_appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req RetrieveAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/retrieve_appointments - Invalid request body, ignoring: session=%s, error=%v", sessionID, err)
		req = RetrieveAppointmentsRequest{}
	}

	caller, err := handlers.LoadCaller(r.Context(), h.sessions, sessionID)
	if err != nil {
		h.logger.Error("POST /tools/retrieve_appointments - Failed to load session: session=%s, error=%v", sessionID, err)
		h.fail(w, msgRetrievalFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &retrieveAppointments.Request{
		SessionID:        sessionID,
		Caller:           caller,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, retrieveAppointments.ErrUserNotIdentified):
			h.logger.Warn("POST /tools/retrieve_appointments - Caller not identified: session=%s", sessionID)
			h.fail(w, msgNotIdentified)
		default:
			h.logger.Error("POST /tools/retrieve_appointments - Failed to retrieve appointments: session=%s, error=%v", sessionID, err)
			h.fail(w, msgRetrievalFailed)
		}
		return
	}

	var message string
	switch n := len(result.Appointments); n {
	case 0:
		message = msgNoAppointments
	case 1:
		message = msgOneAppointment
	default:
		message = fmt.Sprintf(msgAppointments, n)
	}

	h.logger.Info("POST /tools/retrieve_appointments - Appointments retrieved: session=%s, count=%d",
		sessionID, len(result.Appointments))
	h.respond(w, RetrieveAppointmentsResponse{
		ToolResponse: handlers.ToolOK(message),
		Appointments: fromAppointments(result.Appointments),
	})
}

func (h *Handler) fail(w http.ResponseWriter, message string) {
	h.respond(w, RetrieveAppointmentsResponse{
		ToolResponse: handlers.ToolFail(message),
		Appointments: []*handlers.AppointmentResponse{},
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp RetrieveAppointmentsResponse) {
	h.tools.ObserveTool(domain.ToolRetrieveAppointments, resp.Success)
	handlers.RespondTool(w, resp)
}
