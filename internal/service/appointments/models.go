package appointments

import "github.com/m04kA/SMC-AppointmentAssistant/pkg/types"

// CreateRequest данные для создания записи
type CreateRequest struct {
	ContactNumber string
	UserName      string
	Date          types.Date
	Time          types.TimeString
	Notes         *string
}
