package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// BusinessHours is the informational opening window of the business
type BusinessHours struct {
	Start types.TimeString
	End   types.TimeString
}

// SchedulingConfig is the scheduling policy; immutable after load
type SchedulingConfig struct {
	AvailableTimes   []types.TimeString
	DaysAhead        int
	ExcludedWeekdays []time.Weekday
	DurationMinutes  int
	BusinessHours    BusinessHours
	MinNoticeMinutes int
	Location         *time.Location
}

// DefaultSchedulingConfig returns the built-in policy used when no file is configured
func DefaultSchedulingConfig() SchedulingConfig {
	return SchedulingConfig{
		AvailableTimes: []types.TimeString{
			"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
		},
		DaysAhead:        DefaultDaysAhead,
		ExcludedWeekdays: []time.Weekday{time.Saturday, time.Sunday},
		DurationMinutes:  DefaultDurationMinutes,
		BusinessHours: BusinessHours{
			Start: "09:00",
			End:   "17:00",
		},
		MinNoticeMinutes: DefaultMinNoticeMinutes,
		Location:         time.Local,
	}
}

// IsExcluded returns true if no appointments are offered on the weekday
func (c SchedulingConfig) IsExcluded(weekday time.Weekday) bool {
	for _, w := range c.ExcludedWeekdays {
		if w == weekday {
			return true
		}
	}
	return false
}

// HasTime returns true if the time of day is one of the offered slot times
func (c SchedulingConfig) HasTime(t types.TimeString) bool {
	for _, available := range c.AvailableTimes {
		if available == t {
			return true
		}
	}
	return false
}

// Loc returns the configured location, falling back to UTC
func (c SchedulingConfig) Loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// WeekdayFromIndex converts a Monday-based index (0=Monday..6=Sunday) to time.Weekday
func WeekdayFromIndex(index int) (time.Weekday, bool) {
	if index < 0 || index > 6 {
		return 0, false
	}
	return time.Weekday((index + 1) % 7), true
}
