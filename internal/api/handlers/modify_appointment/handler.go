package modify_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	modifyAppointment "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/modify_appointment"
)

const (
	msgInvalidRequestBody = "I didn't catch the new date and time. Could you repeat them?"
	msgNotIdentified      = "I need your phone number first. What's your phone number?"
	msgNoAppointments     = "You don't have any appointments to modify."
	msgAmbiguous          = "I couldn't find that appointment. Could you specify which one you'd like to modify?"
	msgNothingToChange    = "What date or time would you like to move your appointment to?"
	msgInvalidDate        = "I couldn't understand that date. Could you say it differently?"
	msgInvalidTime        = "I couldn't understand that time. Could you say it like 2 PM?"
	msgInvalidSlot        = "That time slot isn't available. Would you like to hear available times?"
	msgSlotNotAvailable   = "Sorry, that new time slot is already booked. Would you like to choose a different time?"
	msgModifyFailed       = "I had trouble modifying that appointment. Could you try again?"
	msgModified           = "Great! I've rescheduled your appointment to %s."
)

type Handler struct {
	useCase  ModifyAppointmentUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase ModifyAppointmentUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/modify_appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req ModifyAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/modify_appointment - Invalid request body: session=%s, error=%v", sessionID, err)
		h.respond(w, ModifyAppointmentResponse{ToolResponse: handlers.ToolFail(msgInvalidRequestBody)})
		return
	}

	caller, err := handlers.LoadCaller(r.Context(), h.sessions, sessionID)
	if err != nil {
		h.logger.Error("POST /tools/modify_appointment - Failed to load session: session=%s, error=%v", sessionID, err)
		h.respond(w, ModifyAppointmentResponse{ToolResponse: handlers.ToolFail(msgModifyFailed)})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &modifyAppointment.Request{
		SessionID:        sessionID,
		Caller:           caller,
		IdentifierPhrase: req.Identifier,
		NewDatePhrase:    req.NewDate,
		NewTimePhrase:    req.NewTime,
	})
	if err != nil {
		var message string
		switch {
		case errors.Is(err, modifyAppointment.ErrUserNotIdentified):
			message = msgNotIdentified
		case errors.Is(err, modifyAppointment.ErrNoAppointments):
			message = msgNoAppointments
		case errors.Is(err, modifyAppointment.ErrAppointmentAmbiguous),
			errors.Is(err, modifyAppointment.ErrAppointmentNotFound):
			message = msgAmbiguous
		case errors.Is(err, modifyAppointment.ErrInvalidInput):
			message = msgNothingToChange
		case errors.Is(err, modifyAppointment.ErrInvalidDate):
			message = msgInvalidDate
		case errors.Is(err, modifyAppointment.ErrInvalidTime):
			message = msgInvalidTime
		case errors.Is(err, modifyAppointment.ErrInvalidSlot):
			message = msgInvalidSlot
		case errors.Is(err, modifyAppointment.ErrSlotNotAvailable):
			message = msgSlotNotAvailable
		default:
			h.logger.Error("POST /tools/modify_appointment - Failed to modify appointment: session=%s, error=%v", sessionID, err)
			h.respond(w, ModifyAppointmentResponse{ToolResponse: handlers.ToolFail(msgModifyFailed)})
			return
		}
		h.logger.Warn("POST /tools/modify_appointment - Modification rejected: session=%s, error=%v", sessionID, err)
		h.respond(w, ModifyAppointmentResponse{ToolResponse: handlers.ToolFail(message)})
		return
	}

	h.logger.Info("POST /tools/modify_appointment - Appointment rescheduled: session=%s, appointment_id=%s",
		sessionID, result.Appointment.ID)
	h.respond(w, ModifyAppointmentResponse{
		ToolResponse: handlers.ToolOK(fmt.Sprintf(msgModified, result.Appointment.Display())),
		Appointment:  handlers.FromAppointment(result.Appointment),
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp ModifyAppointmentResponse) {
	h.tools.ObserveTool(domain.ToolModifyAppointment, resp.Success)
	handlers.RespondTool(w, resp)
}
