package book_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	bookAppointment "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "I didn't catch the details. Could you tell me the date and time again?"
	msgNotIdentified      = "I need your phone number first before I can book an appointment. Could you provide that?"
	msgNameRequired       = "May I have your name for the appointment?"
	msgInvalidDate        = "I couldn't understand that date. Could you say it differently? For example, tomorrow or January 25th."
	msgInvalidTime        = "I couldn't understand that time. Could you say it like 2 PM or 2:30 PM?"
	msgInvalidSlot        = "That time slot isn't available in our system. Would you like to hear available times?"
	msgSlotNotAvailable   = "Sorry, that time slot is already booked. Would you like to choose a different time?"
	msgBookingFailed      = "I had trouble booking that appointment. Could you try again?"
	msgBooked             = "Perfect! I've booked your appointment for %s. You'll receive a confirmation shortly."
)

type Handler struct {
	useCase  BookAppointmentUseCase
	sessions handlers.SessionStore
	tools    handlers.ToolRecorder
	logger   Logger
}

func NewHandler(useCase BookAppointmentUseCase, sessions handlers.SessionStore, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		tools:    tools,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/book_appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/book_appointment - Invalid request body: session=%s, error=%v", sessionID, err)
		h.respond(w, BookAppointmentResponse{ToolResponse: handlers.ToolFail(msgInvalidRequestBody)})
		return
	}

	caller, err := handlers.LoadCaller(r.Context(), h.sessions, sessionID)
	if err != nil {
		h.logger.Error("POST /tools/book_appointment - Failed to load session: session=%s, error=%v", sessionID, err)
		h.respond(w, BookAppointmentResponse{ToolResponse: handlers.ToolFail(msgBookingFailed)})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookAppointment.Request{
		SessionID:  sessionID,
		Caller:     caller,
		DatePhrase: req.Date,
		TimePhrase: req.Time,
		UserName:   req.UserName,
		Notes:      req.Notes,
	})
	if err != nil {
		var message string
		switch {
		case errors.Is(err, bookAppointment.ErrUserNotIdentified):
			message = msgNotIdentified
		case errors.Is(err, bookAppointment.ErrInvalidInput):
			message = msgNameRequired
		case errors.Is(err, bookAppointment.ErrInvalidDate):
			message = msgInvalidDate
		case errors.Is(err, bookAppointment.ErrInvalidTime):
			message = msgInvalidTime
		case errors.Is(err, bookAppointment.ErrInvalidSlot):
			message = msgInvalidSlot
		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			message = msgSlotNotAvailable
		default:
			h.logger.Error("POST /tools/book_appointment - Failed to book appointment: session=%s, error=%v", sessionID, err)
			h.respond(w, BookAppointmentResponse{ToolResponse: handlers.ToolFail(msgBookingFailed)})
			return
		}
		h.logger.Warn("POST /tools/book_appointment - Booking rejected: session=%s, error=%v", sessionID, err)
		h.respond(w, BookAppointmentResponse{ToolResponse: handlers.ToolFail(message)})
		return
	}

	// Запись уже создана: ошибка сохранения сессии на ответ не влияет
	if err := h.sessions.Save(r.Context(), sessionID, result.Caller); err != nil {
		h.logger.Warn("POST /tools/book_appointment - Failed to update session: session=%s, error=%v", sessionID, err)
	}

	h.logger.Info("POST /tools/book_appointment - Appointment booked: session=%s, appointment_id=%s",
		sessionID, result.Appointment.ID)
	h.respond(w, BookAppointmentResponse{
		ToolResponse: handlers.ToolOK(fmt.Sprintf(msgBooked, result.Appointment.Display())),
		Appointment:  handlers.FromAppointment(result.Appointment),
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp BookAppointmentResponse) {
	h.tools.ObserveTool(domain.ToolBookAppointment, resp.Success)
	handlers.RespondTool(w, resp)
}
