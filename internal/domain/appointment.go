package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus converts a stored value into a known status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusActive, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// AppointmentID is an opaque, unique appointment handle
type AppointmentID struct {
	uuid.UUID
}

// NewAppointmentID generates a fresh random identifier
func NewAppointmentID() AppointmentID {
	return AppointmentID{UUID: uuid.New()}
}

// ParseAppointmentID parses the canonical string form of an identifier
func ParseAppointmentID(s string) (AppointmentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AppointmentID{}, fmt.Errorf("invalid appointment id %q: %w", s, err)
	}
	return AppointmentID{UUID: id}, nil
}

// IsZero returns true if the identifier was never assigned
func (id AppointmentID) IsZero() bool {
	return id.UUID == uuid.Nil
}

// Value implements driver.Valuer
func (id AppointmentID) Value() (driver.Value, error) {
	return id.UUID.String(), nil
}

// Appointment represents a booked (or cancelled) slot held by a caller
type Appointment struct {
	ID            AppointmentID
	ContactNumber string
	UserName      string
	Date          types.Date
	Time          types.TimeString
	Status        AppointmentStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still holds its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Occupies returns true if the appointment is active at the given slot
func (a *Appointment) Occupies(date types.Date, t types.TimeString) bool {
	return a.IsActive() && a.Date == date && a.Time == t
}

// Display renders the appointment slot as "Monday, January 25, 2027 at 2:00 PM"
func (a *Appointment) Display() string {
	return FormatSlot(a.Date, a.Time)
}

// View returns the abbreviated form used in summaries and notifications
func (a *Appointment) View() AppointmentView {
	return AppointmentView{
		ID:     a.ID.String(),
		Date:   a.Date,
		Time:   a.Time,
		Status: a.Status,
	}
}

// AppointmentView is the abbreviated appointment representation
type AppointmentView struct {
	ID     string            `json:"id"`
	Date   types.Date        `json:"date"`
	Time   types.TimeString  `json:"time"`
	Status AppointmentStatus `json:"status"`
}

// FormatSlot renders a date and time for speech
func FormatSlot(date types.Date, t types.TimeString) string {
	return fmt.Sprintf("%s at %s", date.Display(), t.Display())
}
