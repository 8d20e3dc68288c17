package datetime

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

// 2026-10-16 is a Friday
var reference = time.Date(2026, time.October, 16, 10, 15, 0, 0, time.UTC)

func TestInterpretDate_Literals(t *testing.T) {
	interpreter := NewInterpreter()

	tests := []struct {
		phrase string
		want   types.Date
	}{
		{phrase: "today", want: types.NewDate(2026, time.October, 16)},
		{phrase: "  NOW ", want: types.NewDate(2026, time.October, 16)},
		{phrase: "Tomorrow", want: types.NewDate(2026, time.October, 17)},
		{phrase: "day after tomorrow", want: types.NewDate(2026, time.October, 18)},
		{phrase: "next monday", want: types.NewDate(2026, time.October, 19)},
		{phrase: "next Monday morning", want: types.NewDate(2026, time.October, 19)},
		{phrase: "next wednesday", want: types.NewDate(2026, time.October, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := interpreter.InterpretDate(tt.phrase, reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretDate_NextSameWeekdayIsOneWeekLater(t *testing.T) {
	got, err := NewInterpreter().InterpretDate("next friday", reference)

	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, time.October, 23), got)
}

func TestInterpretDate_NextWeekdayOnEveryWeekday(t *testing.T) {
	interpreter := NewInterpreter()

	// 2026-10-19 is a Monday
	monday := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	for i, name := range names {
		t.Run(name, func(t *testing.T) {
			today := monday.AddDate(0, 0, i)
			require.Equal(t, name, strings.ToLower(today.Weekday().String()))

			got, err := interpreter.InterpretDate("next "+name, today)
			require.NoError(t, err)
			assert.Equal(t, types.DateOf(today.AddDate(0, 0, 7)), got)

			got, err = interpreter.InterpretDate(name, today)
			require.NoError(t, err)
			assert.Equal(t, types.DateOf(today), got)
		})
	}
}

func TestInterpretDate_BareWeekdayIncludesToday(t *testing.T) {
	interpreter := NewInterpreter()

	got, err := interpreter.InterpretDate("friday", reference)
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, time.October, 16), got)

	got, err = interpreter.InterpretDate("this tuesday", reference)
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, time.October, 20), got)
}

func TestInterpretDate_ExplicitDates(t *testing.T) {
	interpreter := NewInterpreter()

	tests := []struct {
		phrase string
		want   types.Date
	}{
		{phrase: "2027-01-25", want: types.NewDate(2027, time.January, 25)},
		{phrase: "January 25th, 2027", want: types.NewDate(2027, time.January, 25)},
		{phrase: "October 21st", want: types.NewDate(2026, time.October, 21)},
		{phrase: "on the 22nd of October", want: types.NewDate(2026, time.October, 22)},
		{phrase: "January 25", want: types.NewDate(2027, time.January, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := interpreter.InterpretDate(tt.phrase, reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretDate_Unparseable(t *testing.T) {
	interpreter := NewInterpreter()

	for _, phrase := range []string{"", "   ", "whenever works for you"} {
		_, err := interpreter.InterpretDate(phrase, reference)
		assert.ErrorIs(t, err, ErrDateParse, phrase)
	}
}

func TestInterpretTime(t *testing.T) {
	interpreter := NewInterpreter()

	tests := []struct {
		phrase string
		want   types.TimeString
	}{
		{phrase: "noon", want: "12:00"},
		{phrase: "Midnight", want: "00:00"},
		{phrase: "morning", want: "09:00"},
		{phrase: "afternoon", want: "14:00"},
		{phrase: "evening", want: "18:00"},
		{phrase: "2pm", want: "14:00"},
		{phrase: "2 PM", want: "14:00"},
		{phrase: "at 2:30 pm", want: "14:30"},
		{phrase: "around 10am", want: "10:00"},
		{phrase: "3 o'clock", want: "03:00"},
		{phrase: "9:30", want: "09:30"},
		{phrase: "14:30", want: "14:30"},
		{phrase: "14", want: "14:00"},
		{phrase: "2", want: "02:00"},
		{phrase: "12pm", want: "12:00"},
		{phrase: "12am", want: "00:00"},
		{phrase: "10 a.m.", want: "10:00"},
		{phrase: "maybe 4pm please", want: "16:00"},
		{phrase: "1430", want: "14:30"},
		{phrase: "930", want: "09:30"},
		{phrase: "930am", want: "09:30"},
		{phrase: "9.30", want: "09:30"},
		{phrase: "2 30", want: "02:30"},
		{phrase: "2 30 pm", want: "14:30"},
		{phrase: "7 in the evening", want: "19:00"},
		{phrase: "8 in the morning", want: "08:00"},
		{phrase: "at 9 at night", want: "21:00"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := interpreter.InterpretTime(tt.phrase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretTime_Unparseable(t *testing.T) {
	interpreter := NewInterpreter()

	for _, phrase := range []string{"", "at", "banana", "25:00", "9:75", "2575", "12345", "9.75", "2 75"} {
		_, err := interpreter.InterpretTime(phrase)
		assert.ErrorIs(t, err, ErrTimeParse, phrase)
	}
}
