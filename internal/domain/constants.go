package domain

// Default scheduling values
const (
	DefaultDaysAhead        = 14
	DefaultDurationMinutes  = 30
	DefaultMinNoticeMinutes = 60 // 1 hour
)

// Assistant limits
const (
	MaxSuggestedSlots      = 20
	MaxSummaryAppointments = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Tool names exposed to the conversational orchestrator
const (
	ToolIdentifyUser         = "identify_user"
	ToolFetchSlots           = "fetch_slots"
	ToolBookAppointment      = "book_appointment"
	ToolRetrieveAppointments = "retrieve_appointments"
	ToolCancelAppointment    = "cancel_appointment"
	ToolModifyAppointment    = "modify_appointment"
	ToolEndConversation      = "end_conversation"
)
