package cancel_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/datetime"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/identifier"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

type stubLedger struct {
	active    []*domain.Appointment
	listErr   error
	cancelErr error
	notFound  bool
	cancelled []domain.AppointmentID
}

func (s *stubLedger) ListForContact(_ context.Context, _ string, _ bool) ([]*domain.Appointment, error) {
	return s.active, s.listErr
}

func (s *stubLedger) Cancel(_ context.Context, id domain.AppointmentID) (bool, error) {
	if s.cancelErr != nil {
		return false, s.cancelErr
	}
	if s.notFound {
		return false, nil
	}
	s.cancelled = append(s.cancelled, id)
	return true, nil
}

type recordingNotifier struct {
	events []domain.Event
}

func (n *recordingNotifier) Notify(event domain.Event) {
	n.events = append(n.events, event)
}

var caller = &domain.Caller{ContactNumber: "15551234567"}

func appointment(day int, t types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		ID:            domain.NewAppointmentID(),
		ContactNumber: caller.ContactNumber,
		UserName:      "Jana",
		Date:          types.NewDate(2026, time.October, day),
		Time:          t,
		Status:        domain.StatusActive,
	}
}

func newUseCase(ledger *stubLedger, notifier *recordingNotifier) *UseCase {
	return NewUseCase(ledger, identifier.NewResolver(datetime.NewInterpreter()), notifier, logger.NewNop())
}

func TestExecute_CancelsByDate(t *testing.T) {
	first, second := appointment(19, "09:00"), appointment(21, "14:00")
	ledger := &stubLedger{active: []*domain.Appointment{first, second}}
	notifier := &recordingNotifier{}
	uc := newUseCase(ledger, notifier)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Caller: caller, IdentifierPhrase: "2026-10-21"})
	require.NoError(t, err)

	assert.Equal(t, []domain.AppointmentID{second.ID}, ledger.cancelled)
	assert.Equal(t, domain.StatusCancelled, resp.Appointment.Status)
	assert.Equal(t, domain.StatusActive, second.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, domain.EventAppointmentCancelled, notifier.events[0].Type)
}

func TestExecute_CancelsByID(t *testing.T) {
	first, second := appointment(19, "09:00"), appointment(21, "14:00")
	ledger := &stubLedger{active: []*domain.Appointment{first, second}}
	uc := newUseCase(ledger, &recordingNotifier{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Caller: caller, IdentifierPhrase: first.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, []domain.AppointmentID{first.ID}, ledger.cancelled)
}

func TestExecute_SingleAppointmentResolvesAnyPhrase(t *testing.T) {
	only := appointment(19, "09:00")
	ledger := &stubLedger{active: []*domain.Appointment{only}}
	uc := newUseCase(ledger, &recordingNotifier{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Caller: caller, IdentifierPhrase: "the dentist one"})
	require.NoError(t, err)

	assert.Equal(t, []domain.AppointmentID{only.ID}, ledger.cancelled)
}

func TestExecute_Errors(t *testing.T) {
	two := []*domain.Appointment{appointment(19, "09:00"), appointment(21, "14:00")}

	cases := []struct {
		name   string
		ledger *stubLedger
		req    Request
		want   error
	}{
		{name: "not identified", ledger: &stubLedger{active: two}, req: Request{}, want: ErrUserNotIdentified},
		{name: "no appointments", ledger: &stubLedger{}, req: Request{Caller: caller}, want: ErrNoAppointments},
		{name: "ambiguous", ledger: &stubLedger{active: two}, req: Request{Caller: caller, IdentifierPhrase: "the one"}, want: ErrAppointmentAmbiguous},
		{name: "list error", ledger: &stubLedger{listErr: errors.New("down")}, req: Request{Caller: caller}, want: ErrInternal},
		{name: "cancel error", ledger: &stubLedger{active: two[:1], cancelErr: errors.New("down")}, req: Request{Caller: caller}, want: ErrInternal},
		{name: "vanished", ledger: &stubLedger{active: two[:1], notFound: true}, req: Request{Caller: caller}, want: ErrCancelFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			uc := newUseCase(tc.ledger, notifier)

			req := tc.req
			req.SessionID = "s1"
			_, err := uc.Execute(context.Background(), &req)

			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, notifier.events)
		})
	}
}
