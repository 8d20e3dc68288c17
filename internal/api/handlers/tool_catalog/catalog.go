package tool_catalog

import "github.com/m04kA/SMC-AppointmentAssistant/internal/domain"

// Parameter JSON-schema описание аргумента инструмента
type Parameter struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Parameters JSON-schema объект аргументов
type Parameters struct {
	Type       string               `json:"type"`
	Properties map[string]Parameter `json:"properties"`
	Required   []string             `json:"required"`
}

// Tool описание функции для оркестратора разговора
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

func object(required []string, props map[string]Parameter) Parameters {
	if props == nil {
		props = map[string]Parameter{}
	}
	if required == nil {
		required = []string{}
	}
	return Parameters{Type: "object", Properties: props, Required: required}
}

func str(description string) Parameter {
	return Parameter{Type: "string", Description: description}
}

// Catalog возвращает описания всех инструментов в порядке типичного разговора
func Catalog() []Tool {
	return []Tool{
		{
			Name: domain.ToolIdentifyUser,
			Description: "Identify user by phone number and retrieve their profile. " +
				"Call this function when the user provides their phone number.",
			Parameters: object([]string{"phone_number"}, map[string]Parameter{
				"phone_number": str("The user's phone number in any format"),
			}),
		},
		{
			Name:        domain.ToolFetchSlots,
			Description: "Fetch available appointment slots. Use this to show users what times are available for booking.",
			Parameters: object(nil, map[string]Parameter{
				"preferred_date": str("Optional preferred date (e.g., \"tomorrow\", \"next Monday\", \"January 25\")"),
			}),
		},
		{
			Name: domain.ToolBookAppointment,
			Description: "Book an appointment for the user after confirming all details. " +
				"The user must be identified (phone number collected) before booking.",
			Parameters: object([]string{"date", "time"}, map[string]Parameter{
				"date":      str("Date for appointment (e.g., \"2026-01-25\", \"tomorrow\", \"next Monday\")"),
				"time":      str("Time for appointment (e.g., \"2pm\", \"14:00\", \"2:30 PM\")"),
				"user_name": str("User's full name"),
				"notes":     str("Optional notes for the appointment"),
			}),
		},
		{
			Name:        domain.ToolRetrieveAppointments,
			Description: "Retrieve all active appointments for the current user. Use this when the user wants to see their upcoming appointments.",
			Parameters: object(nil, map[string]Parameter{
				"include_cancelled": {Type: "boolean", Description: "Also list cancelled appointments"},
			}),
		},
		{
			Name:        domain.ToolCancelAppointment,
			Description: "Cancel a specific appointment. The appointment can be identified by its ID or date.",
			Parameters: object(nil, map[string]Parameter{
				"identifier": str("The appointment ID, date, or description to cancel"),
			}),
		},
		{
			Name:        domain.ToolModifyAppointment,
			Description: "Modify an existing appointment's date and/or time. Use this when the user wants to reschedule an appointment.",
			Parameters: object(nil, map[string]Parameter{
				"identifier": str("The appointment ID, date, or description to modify"),
				"new_date":   str("New date for the appointment"),
				"new_time":   str("New time for the appointment"),
			}),
		},
		{
			Name: domain.ToolEndConversation,
			Description: "End the conversation and generate a summary. " +
				"Call this when the user indicates they're done or wants to end the call.",
			Parameters: object(nil, map[string]Parameter{
				"usage": {Type: "object", Description: "Usage counters collected by the orchestrator"},
			}),
		},
	}
}
