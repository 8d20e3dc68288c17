package cancel_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	cancelAppointment "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/cancel_appointment"
)

const (
	msgNotIdentified  = "I need your phone number first. What's your phone number?"
	msgNoAppointments = "You don't have any appointments to cancel."
	msgAmbiguous      = "I couldn't find that appointment. Could you specify which one you'd like to cancel?"
	msgCancelFailed   = "I had trouble cancelling that appointment. Could you try again?"
	msgInternalError  = "I'm having trouble cancelling that appointment. Please try again."
	msgCancelled      = "I've cancelled your appointment for %s."
)

type Handler struct {
	useCase  CancelAppointmentUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase CancelAppointmentUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/cancel_appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/cancel_appointment - Invalid request body, ignoring: session=%s, error=%v", sessionID, err)
		req = CancelAppointmentRequest{}
	}

	caller, err := handlers.LoadCaller(r.Context(), h.sessions, sessionID)
	if err != nil {
		h.logger.Error("POST /tools/cancel_appointment - Failed to load session: session=%s, error=%v", sessionID, err)
		h.respond(w, CancelAppointmentResponse{ToolResponse: handlers.ToolFail(msgInternalError)})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		SessionID:        sessionID,
		Caller:           caller,
		IdentifierPhrase: req.Identifier,
	})
	if err != nil {
		var message string
		switch {
		case errors.Is(err, cancelAppointment.ErrUserNotIdentified):
			message = msgNotIdentified
		case errors.Is(err, cancelAppointment.ErrNoAppointments):
			message = msgNoAppointments
		case errors.Is(err, cancelAppointment.ErrAppointmentAmbiguous):
			message = msgAmbiguous
		case errors.Is(err, cancelAppointment.ErrCancelFailed):
			message = msgCancelFailed
		default:
			h.logger.Error("POST /tools/cancel_appointment - Failed to cancel appointment: session=%s, error=%v", sessionID, err)
			h.respond(w, CancelAppointmentResponse{ToolResponse: handlers.ToolFail(msgInternalError)})
			return
		}
		h.logger.Warn("POST /tools/cancel_appointment - Cancel rejected: session=%s, error=%v", sessionID, err)
		h.respond(w, CancelAppointmentResponse{ToolResponse: handlers.ToolFail(message)})
		return
	}

	h.logger.Info("POST /tools/cancel_appointment - Appointment cancelled: session=%s, appointment_id=%s",
		sessionID, result.Appointment.ID)
	h.respond(w, CancelAppointmentResponse{
		ToolResponse: handlers.ToolOK(fmt.Sprintf(msgCancelled, result.Appointment.Display())),
		Appointment:  handlers.FromAppointment(result.Appointment),
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp CancelAppointmentResponse) {
	h.tools.ObserveTool(domain.ToolCancelAppointment, resp.Success)
	handlers.RespondTool(w, resp)
}
