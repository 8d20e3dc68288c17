package domain

import "time"

// CostBreakdown maps a cost component (llm_cost, tts_cost, total_tokens...) to its amount
type CostBreakdown map[string]float64

// ConversationSummary is the write-once record produced when a conversation ends
type ConversationSummary struct {
	ID                    string            `json:"id"`
	SessionID             string            `json:"session_id"`
	SummaryText           string            `json:"summary"`
	ContactNumber         *string           `json:"contact_number,omitempty"`
	AppointmentsMentioned []AppointmentView `json:"appointments_mentioned"`
	CostBreakdown         CostBreakdown     `json:"cost_breakdown"`
	CreatedAt             time.Time         `json:"created_at"`
}
