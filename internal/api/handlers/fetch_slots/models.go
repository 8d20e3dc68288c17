package fetch_slots

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// FetchSlotsRequest HTTP request model
type FetchSlotsRequest struct {
	PreferredDate string `json:"preferred_date,omitempty"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Display string `json:"display"`
}

// FetchSlotsResponse HTTP response model
type FetchSlotsResponse struct {
	handlers.ToolResponse
	Slots          []SlotResponse `json:"slots"`
	TotalAvailable int            `json:"total_available"`
}

func fromSlots(slots []domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			Date:    s.Date.String(),
			Time:    s.Time.String(),
			Display: domain.FormatSlot(s.Date, s.Time),
		})
	}
	return result
}
