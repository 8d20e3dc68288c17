package fetch_slots

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	fetchSlots "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/fetch_slots"
)

const (
	msgSlotsFound         = "I have %d available slots to show you. Here are the options:"
	msgPreferredNotFound  = "I don't have any openings on %s, but here are %d other available slots:"
	msgNoSlotsAvailable   = "I don't have any available slots at the moment. Please check back later."
	msgAvailabilityFailed = "I'm having trouble checking availability right now. Please try again."
)

type Handler struct {
	useCase FetchSlotsUseCase
	tools   handlers.ToolRecorder
	logger  Logger
}

func NewHandler(useCase FetchSlotsUseCase, tools handlers.ToolRecorder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tools:   tools,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/tools/fetch_slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := handlers.SessionID(r)

	var req FetchSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		// Пожелание по дате опционально: без него отдаем ближайшие слоты
		h.logger.Warn("POST /tools/fetch_slots - Invalid request body, ignoring: session=%s, error=%v", sessionID, err)
		req = FetchSlotsRequest{}
	}

	result, err := h.useCase.Execute(r.Context(), &fetchSlots.Request{
		SessionID:     sessionID,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, fetchSlots.ErrNoSlotsAvailable):
			h.logger.Info("POST /tools/fetch_slots - No slots available: session=%s", sessionID)
			h.respond(w, FetchSlotsResponse{ToolResponse: handlers.ToolFail(msgNoSlotsAvailable), Slots: []SlotResponse{}})
		default:
			h.logger.Error("POST /tools/fetch_slots - Failed to fetch slots: session=%s, error=%v", sessionID, err)
			h.respond(w, FetchSlotsResponse{ToolResponse: handlers.ToolFail(msgAvailabilityFailed), Slots: []SlotResponse{}})
		}
		return
	}

	message := fmt.Sprintf(msgSlotsFound, len(result.Slots))
	if result.PreferredDate != nil && !result.PreferredMatched {
		message = fmt.Sprintf(msgPreferredNotFound, result.PreferredDate.Display(), len(result.Slots))
	}

	h.logger.Info("POST /tools/fetch_slots - Slots fetched: session=%s, count=%d, degraded=%t",
		sessionID, len(result.Slots), result.Degraded)
	h.respond(w, FetchSlotsResponse{
		ToolResponse:   handlers.ToolOK(message),
		Slots:          fromSlots(result.Slots),
		TotalAvailable: result.TotalAvailable,
	})
}

func (h *Handler) respond(w http.ResponseWriter, resp FetchSlotsResponse) {
	h.tools.ObserveTool(domain.ToolFetchSlots, resp.Success)
	handlers.RespondTool(w, resp)
}
