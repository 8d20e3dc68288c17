package fetch_slots

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
	fetchSlots "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/fetch_slots"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/types"
)

type stubUseCase struct {
	req  *fetchSlots.Request
	resp *fetchSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *fetchSlots.Request) (*fetchSlots.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(t *testing.T, h *Handler, body string) FetchSlotsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/tools/fetch_slots", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{handlers.SessionIDVar: "s-1"})
	w := httptest.NewRecorder()

	h.Handle(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp FetchSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandle_SlotsFound(t *testing.T) {
	monday := types.NewDate(2026, time.October, 19)
	uc := &stubUseCase{resp: &fetchSlots.Response{
		Slots: []domain.Slot{
			domain.NewSlot(monday, types.MustTimeString("09:00")),
			domain.NewSlot(monday, types.MustTimeString("09:30")),
		},
		TotalAvailable:   12,
		PreferredDate:    ptr.Ptr(monday),
		PreferredMatched: true,
	}}
	h := NewHandler(uc, (*metrics.Metrics)(nil), logger.NewNop())

	resp := serve(t, h, `{"preferred_date": "monday"}`)

	assert.True(t, resp.Success)
	assert.Equal(t, "I have 2 available slots to show you. Here are the options:", resp.Message)
	assert.Equal(t, 12, resp.TotalAvailable)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, SlotResponse{Date: "2026-10-19", Time: "09:00", Display: "Monday, October 19, 2026 at 9:00 AM"}, resp.Slots[0])
	assert.Equal(t, "monday", uc.req.PreferredDate)
}

func TestHandle_PreferredDateHasNoOpenings(t *testing.T) {
	saturday := types.NewDate(2026, time.October, 24)
	uc := &stubUseCase{resp: &fetchSlots.Response{
		Slots:          []domain.Slot{domain.NewSlot(types.NewDate(2026, time.October, 19), types.MustTimeString("09:00"))},
		TotalAvailable: 1,
		PreferredDate:  ptr.Ptr(saturday),
	}}
	h := NewHandler(uc, (*metrics.Metrics)(nil), logger.NewNop())

	resp := serve(t, h, `{"preferred_date": "saturday"}`)

	assert.True(t, resp.Success)
	assert.Equal(t, "I don't have any openings on Saturday, October 24, 2026, but here are 1 other available slots:", resp.Message)
}

func TestHandle_Errors(t *testing.T) {
	cases := map[string]struct {
		err     error
		message string
	}{
		"no slots": {err: fetchSlots.ErrNoSlotsAvailable, message: msgNoSlotsAvailable},
		"internal": {err: errors.New("boom"), message: msgAvailabilityFailed},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tc.err}, (*metrics.Metrics)(nil), logger.NewNop())

			resp := serve(t, h, "")

			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestHandle_MalformedBodyFallsBackToAnyDate(t *testing.T) {
	uc := &stubUseCase{resp: &fetchSlots.Response{}}
	h := NewHandler(uc, (*metrics.Metrics)(nil), logger.NewNop())

	resp := serve(t, h, `{"preferred_date": 42}`)

	assert.True(t, resp.Success)
	assert.Empty(t, uc.req.PreferredDate)
}
