package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// Notification event types pushed to the caller's frontend
const (
	EventAppointmentBooked    = "appointment_booked"
	EventAppointmentCancelled = "appointment_cancelled"
	EventAppointmentModified  = "appointment_modified"
	EventConversationSummary  = "conversation_summary"
)

// Event is a fire-and-forget notification about a session
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	SessionID  string      `json:"session_id"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewEvent builds an event with a fresh identifier
func NewEvent(eventType, sessionID string, payload interface{}, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		SessionID:  sessionID,
		Payload:    payload,
		OccurredAt: at,
	}
}

// AppointmentBookedPayload describes a newly booked appointment
type AppointmentBookedPayload struct {
	AppointmentID string           `json:"appointment_id"`
	UserName      string           `json:"user_name"`
	Date          types.Date       `json:"date"`
	Time          types.TimeString `json:"time"`
	Display       string           `json:"display"`
}

// AppointmentCancelledPayload describes a cancelled appointment
type AppointmentCancelledPayload struct {
	AppointmentID string           `json:"appointment_id"`
	Date          types.Date       `json:"date"`
	Time          types.TimeString `json:"time"`
}

// AppointmentModifiedPayload describes a rescheduled appointment
type AppointmentModifiedPayload struct {
	AppointmentID string           `json:"appointment_id"`
	OldDate       types.Date       `json:"old_date"`
	OldTime       types.TimeString `json:"old_time"`
	NewDate       types.Date       `json:"new_date"`
	NewTime       types.TimeString `json:"new_time"`
	Display       string           `json:"display"`
}

// ConversationSummaryPayload carries the final summary of a session
type ConversationSummaryPayload struct {
	Summary      string            `json:"summary"`
	Appointments []AppointmentView `json:"appointments"`
	Costs        CostBreakdown     `json:"costs"`
	User         *Caller           `json:"user,omitempty"`
}
