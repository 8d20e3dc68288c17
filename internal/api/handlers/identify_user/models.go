package identify_user

import (
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
)

// IdentifyUserRequest HTTP request model
type IdentifyUserRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// IdentifyUserResponse HTTP response model
type IdentifyUserResponse struct {
	handlers.ToolResponse
	User *handlers.CallerResponse `json:"user,omitempty"`
}
