package domain

import "github.com/m04kA/SMC-AppointmentAssistant/pkg/types"

// Slot represents a bookable (date, time) pair with display strings
type Slot struct {
	Date        types.Date       `json:"date"`
	Time        types.TimeString `json:"time"`
	DisplayDate string           `json:"display_date"`
	DisplayTime string           `json:"display_time"`
}

// SlotKey identifies a slot; two slots are equal when their keys are equal
type SlotKey struct {
	Date types.Date
	Time types.TimeString
}

// NewSlot builds a slot with its display strings
func NewSlot(date types.Date, t types.TimeString) Slot {
	return Slot{
		Date:        date,
		Time:        t,
		DisplayDate: date.Display(),
		DisplayTime: t.Display(),
	}
}

// Key returns the identity of the slot
func (s Slot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}

// Equal compares slots by (date, time) only
func (s Slot) Equal(other Slot) bool {
	return s.Key() == other.Key()
}
