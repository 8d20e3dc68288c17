package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/slots"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/clock"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

const contact = "15551234567"

var (
	// 2026-10-16 is a Friday
	now    = time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)
	monday = types.NewDate(2026, time.October, 19)
	wednes = types.NewDate(2026, time.October, 21)
)

type ledgerFixture struct {
	ledger       *Ledger
	appointments *memoryAppointments
	profiles     *memoryProfiles
	conflicts    *conflictCounter
}

func newFixture() *ledgerFixture {
	cfg := domain.DefaultSchedulingConfig()
	cfg.Location = time.UTC

	f := &ledgerFixture{
		appointments: newMemoryAppointments(),
		profiles:     newMemoryProfiles(),
		conflicts:    &conflictCounter{},
	}
	f.ledger = NewLedger(f.appointments, f.profiles, passthroughTx{}, slots.NewCatalog(cfg), f.conflicts, nopLogger{})
	f.ledger.timeProvider = clock.Fixed{At: now}
	return f
}

func (f *ledgerFixture) book(t *testing.T, name string, date types.Date, at types.TimeString) *domain.Appointment {
	t.Helper()
	appt, err := f.ledger.Create(context.Background(), CreateRequest{
		ContactNumber: contact,
		UserName:      name,
		Date:          date,
		Time:          at,
	})
	require.NoError(t, err)
	return appt
}

func TestLedger_Create(t *testing.T) {
	f := newFixture()

	appt := f.book(t, "Alice", monday, "09:00")

	assert.False(t, appt.ID.IsZero())
	assert.Equal(t, domain.StatusActive, appt.Status)
	assert.Equal(t, "Alice", appt.UserName)

	free, err := f.ledger.IsFree(context.Background(), monday, "09:00")
	require.NoError(t, err)
	assert.False(t, free)

	profile, err := f.profiles.Find(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, "Alice", *profile.Name)
}

func TestLedger_Create_ProfileNameNotOverwritten(t *testing.T) {
	f := newFixture()

	f.book(t, "Alice", monday, "09:00")
	f.book(t, "Alicia", monday, "09:30")

	profile, err := f.profiles.Find(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, "Alice", *profile.Name)
}

func TestLedger_Create_SlotConflict(t *testing.T) {
	f := newFixture()
	f.book(t, "Alice", monday, "09:00")

	_, err := f.ledger.Create(context.Background(), CreateRequest{
		ContactNumber: "15559876543",
		UserName:      "Bob",
		Date:          monday,
		Time:          "09:00",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 1, f.conflicts.count)
}

func TestLedger_Create_PolicyViolation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		date types.Date
		time types.TimeString
	}{
		{name: "time not offered", date: monday, time: "12:00"},
		{name: "weekend", date: types.NewDate(2026, time.October, 17), time: "09:00"},
		{name: "past date", date: types.NewDate(2026, time.October, 15), time: "09:00"},
		{name: "beyond horizon", date: types.NewDate(2026, time.November, 30), time: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.Create(context.Background(), CreateRequest{
				ContactNumber: contact,
				UserName:      "Alice",
				Date:          tt.date,
				Time:          tt.time,
			})
			assert.ErrorIs(t, err, ErrPolicyViolation)
		})
	}
}

func TestLedger_Create_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.ledger.Create(context.Background(), CreateRequest{ContactNumber: contact, Date: monday, Time: "09:00"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLedger_Create_StoreError(t *testing.T) {
	f := newFixture()
	f.appointments.fail = errStoreDown

	_, err := f.ledger.Create(context.Background(), CreateRequest{
		ContactNumber: contact,
		UserName:      "Alice",
		Date:          monday,
		Time:          "09:00",
	})

	assert.ErrorIs(t, err, ErrStore)
}

func TestLedger_Create_ConcurrentRequestsForSameSlot(t *testing.T) {
	f := newFixture()

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.Create(context.Background(), CreateRequest{
				ContactNumber: contact,
				UserName:      "Alice",
				Date:          monday,
				Time:          "10:00",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrSlotConflict)
	}

	assert.Equal(t, 1, succeeded)
	active, err := f.ledger.ListForContact(context.Background(), contact, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestLedger_CreateUsesSerializableTransaction(t *testing.T) {
	f := newFixture()
	tx := &isolationTx{}
	f.ledger.txManager = tx

	appt := f.book(t, "Alice", monday, "09:00")

	assert.Equal(t, 1, tx.serializable)
	assert.Equal(t, 0, tx.plain)

	_, err := f.ledger.Modify(context.Background(), appt.ID, wednes, "14:00")
	require.NoError(t, err)
	assert.Equal(t, 1, tx.serializable)
	assert.Equal(t, 1, tx.plain)
}

func TestLedger_IsFree_StoreErrorReportsBusy(t *testing.T) {
	f := newFixture()
	f.appointments.fail = errStoreDown

	free, err := f.ledger.IsFree(context.Background(), monday, "09:00")

	assert.False(t, free)
	assert.ErrorIs(t, err, ErrStore)
}

func TestLedger_Cancel(t *testing.T) {
	f := newFixture()
	appt := f.book(t, "Alice", monday, "09:00")

	ok, err := f.ledger.Cancel(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	free, err := f.ledger.IsFree(context.Background(), monday, "09:00")
	require.NoError(t, err)
	assert.True(t, free)

	// повторная отмена тоже успешна
	ok, err = f.ledger.Cancel(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	active, err := f.ledger.ListForContact(context.Background(), contact, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := f.ledger.ListForContact(context.Background(), contact, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusCancelled, all[0].Status)
}

func TestLedger_Cancel_UnknownID(t *testing.T) {
	f := newFixture()

	ok, err := f.ledger.Cancel(context.Background(), domain.NewAppointmentID())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedger_Modify(t *testing.T) {
	f := newFixture()
	appt := f.book(t, "Alice", monday, "09:00")

	updated, err := f.ledger.Modify(context.Background(), appt.ID, wednes, "14:00")
	require.NoError(t, err)
	assert.Equal(t, appt.ID, updated.ID)
	assert.Equal(t, wednes, updated.Date)
	assert.Equal(t, types.TimeString("14:00"), updated.Time)

	oldFree, err := f.ledger.IsFree(context.Background(), monday, "09:00")
	require.NoError(t, err)
	assert.True(t, oldFree)

	newFree, err := f.ledger.IsFree(context.Background(), wednes, "14:00")
	require.NoError(t, err)
	assert.False(t, newFree)
}

func TestLedger_Modify_ToOwnSlotIsNoop(t *testing.T) {
	f := newFixture()
	appt := f.book(t, "Alice", monday, "09:00")

	updated, err := f.ledger.Modify(context.Background(), appt.ID, monday, "09:00")

	require.NoError(t, err)
	assert.Equal(t, appt.ID, updated.ID)
	assert.Zero(t, f.conflicts.count)
}

func TestLedger_Modify_ConflictLeavesRecordUntouched(t *testing.T) {
	f := newFixture()
	first := f.book(t, "Alice", monday, "09:00")
	f.book(t, "Alice", wednes, "14:00")

	_, err := f.ledger.Modify(context.Background(), first.ID, wednes, "14:00")
	assert.ErrorIs(t, err, ErrSlotConflict)

	stored, err := f.appointments.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, monday, stored.Date)
	assert.Equal(t, types.TimeString("09:00"), stored.Time)
}

func TestLedger_Modify_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.ledger.Modify(context.Background(), domain.NewAppointmentID(), wednes, "14:00")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestLedger_ListForContact_Ordered(t *testing.T) {
	f := newFixture()
	f.book(t, "Alice", wednes, "09:00")
	f.book(t, "Alice", monday, "14:00")
	f.book(t, "Alice", monday, "09:30")

	list, err := f.ledger.ListForContact(context.Background(), contact, false)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, monday, list[0].Date)
	assert.Equal(t, types.TimeString("09:30"), list[0].Time)
	assert.Equal(t, types.TimeString("14:00"), list[1].Time)
	assert.Equal(t, wednes, list[2].Date)
}

func TestLedger_TakenSlots(t *testing.T) {
	f := newFixture()
	f.book(t, "Alice", monday, "09:00")
	cancelled := f.book(t, "Alice", monday, "09:30")
	_, err := f.ledger.Cancel(context.Background(), cancelled.ID)
	require.NoError(t, err)

	taken, err := f.ledger.TakenSlots(context.Background(), monday, wednes)
	require.NoError(t, err)

	assert.Len(t, taken, 1)
	assert.Contains(t, taken, domain.SlotKey{Date: monday, Time: "09:00"})
}
