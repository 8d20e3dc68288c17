package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = NewTimeStringFromString("14:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), ts)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("14:00"))
	assert.True(t, TimeString("16:30").IsAfter("09:30"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_Display(t *testing.T) {
	assert.Equal(t, "2:00 PM", TimeString("14:00").Display())
	assert.Equal(t, "9:30 AM", TimeString("09:30").Display())
	assert.Equal(t, "12:00 AM", TimeString("00:00").Display())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2026, time.October, 30)

	assert.Equal(t, NewDate(2026, time.November, 2), d.AddDays(3))
	assert.Equal(t, time.Friday, d.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.Equal(t, 0, d.Compare(NewDate(2026, time.October, 30)))
}

func TestDate_DisplayAndString(t *testing.T) {
	d := NewDate(2027, time.January, 25)

	assert.Equal(t, "2027-01-25", d.String())
	assert.Equal(t, "Monday, January 25, 2027", d.Display())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2026, time.October, 19), d)

	require.NoError(t, d.Scan("2026-10-21T00:00:00Z"))
	assert.Equal(t, NewDate(2026, time.October, 21), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Date Date `json:"date"`
	}{Date: NewDate(2026, time.October, 19)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-19"}`, string(data))

	var decoded struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, payload.Date, decoded.Date)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("19/10/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
