package end_conversation

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/costs"
)

// EndConversationRequest HTTP request model
// Счетчики использования передает оркестратор разговора
type EndConversationRequest struct {
	Usage costs.Usage `json:"usage"`
}

// EndConversationResponse HTTP response model
type EndConversationResponse struct {
	handlers.ToolResponse
	Summary   SummaryResponse `json:"summary"`
	Persisted bool            `json:"persisted"`
}

type SummaryResponse struct {
	ID                    string                   `json:"id"`
	Text                  string                   `json:"text"`
	ContactNumber         *string                  `json:"contact_number,omitempty"`
	AppointmentsMentioned []domain.AppointmentView `json:"appointments_mentioned"`
	CostBreakdown         domain.CostBreakdown     `json:"cost_breakdown"`
}

func fromSummary(s domain.ConversationSummary) SummaryResponse {
	mentioned := s.AppointmentsMentioned
	if mentioned == nil {
		mentioned = []domain.AppointmentView{}
	}
	return SummaryResponse{
		ID:                    s.ID,
		Text:                  s.SummaryText,
		ContactNumber:         s.ContactNumber,
		AppointmentsMentioned: mentioned,
		CostBreakdown:         s.CostBreakdown,
	}
}
