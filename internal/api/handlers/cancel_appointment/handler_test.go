package cancel_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/infra/session"
	cancelAppointment "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

type stubUseCase struct {
	req  *cancelAppointment.Request
	resp *cancelAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(t *testing.T, h *Handler, body string) CancelAppointmentResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/tools/cancel_appointment", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{handlers.SessionIDVar: "s-1"})
	w := httptest.NewRecorder()

	h.Handle(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CancelAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandle_Cancelled(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	require.NoError(t, store.Save(context.Background(), "s-1", domain.Caller{ContactNumber: "5551234567"}))

	uc := &stubUseCase{resp: &cancelAppointment.Response{Appointment: &domain.Appointment{
		ID:            domain.NewAppointmentID(),
		ContactNumber: "5551234567",
		Date:          types.NewDate(2026, time.October, 22),
		Time:          types.MustTimeString("09:30"),
		Status:        domain.StatusCancelled,
	}}}
	h := NewHandler(uc, store, (*metrics.Metrics)(nil), logger.NewNop())

	resp := serve(t, h, `{"identifier": "thursday"}`)

	assert.True(t, resp.Success)
	assert.Equal(t, "I've cancelled your appointment for Thursday, October 22, 2026 at 9:30 AM.", resp.Message)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "cancelled", resp.Appointment.Status)
	assert.Equal(t, "thursday", uc.req.IdentifierPhrase)
	require.NotNil(t, uc.req.Caller)
}

func TestHandle_ErrorMessages(t *testing.T) {
	cases := map[string]struct {
		err     error
		message string
	}{
		"not identified": {err: cancelAppointment.ErrUserNotIdentified, message: msgNotIdentified},
		"nothing booked": {err: cancelAppointment.ErrNoAppointments, message: msgNoAppointments},
		"ambiguous":      {err: cancelAppointment.ErrAppointmentAmbiguous, message: msgAmbiguous},
		"cancel failed":  {err: cancelAppointment.ErrCancelFailed, message: msgCancelFailed},
		"internal":       {err: errors.New("boom"), message: msgInternalError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tc.err}, session.NewMemoryStore(time.Hour), (*metrics.Metrics)(nil), logger.NewNop())

			resp := serve(t, h, `{}`)

			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}
