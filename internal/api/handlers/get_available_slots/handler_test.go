package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

type mockUseCase struct {
	resp   *getAvailableSlots.Response
	err    error
	gotReq *getAvailableSlots.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	m.gotReq = req
	return m.resp, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			ProfessionalID:  1,
			IsOpen:          true,
			DurationMinutes: 45,
			Slots: []getAvailableSlots.Slot{
				{StartTime: types.TimeString("10:00"), EndTime: types.TimeString("10:45")},
				{StartTime: types.TimeString("10:15"), EndTime: types.TimeString("11:00")},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, "/api/v1/available-slots?professionalId=1&date=2026-03-10&serviceIds=1,2")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, 45, resp.DurationMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:45", resp.Slots[0].EndTime)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.ProfessionalID)
	assert.Equal(t, []int64{1, 2}, uc.gotReq.ServiceIDs)
	assert.Nil(t, uc.gotReq.ExcludeAppointmentID)
}

func TestHandler_Handle_ExcludeAppointment(t *testing.T) {
	uc := &mockUseCase{resp: &getAvailableSlots.Response{Slots: []getAvailableSlots.Slot{}}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, "/api/v1/available-slots?professionalId=1&date=2026-03-10&serviceIds=1&excludeAppointmentId=7")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.ExcludeAppointmentID)
	assert.Equal(t, int64(7), *uc.gotReq.ExcludeAppointmentID)
}

func TestHandler_Handle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing professional", url: "/api/v1/available-slots?date=2026-03-10&serviceIds=1"},
		{name: "bad professional", url: "/api/v1/available-slots?professionalId=abc&date=2026-03-10&serviceIds=1"},
		{name: "missing date", url: "/api/v1/available-slots?professionalId=1&serviceIds=1"},
		{name: "bad date", url: "/api/v1/available-slots?professionalId=1&date=10.03.2026&serviceIds=1"},
		{name: "missing services", url: "/api/v1/available-slots?professionalId=1&date=2026-03-10"},
		{name: "bad services", url: "/api/v1/available-slots?professionalId=1&date=2026-03-10&serviceIds=1,x"},
		{name: "bad exclude id", url: "/api/v1/available-slots?professionalId=1&date=2026-03-10&serviceIds=1&excludeAppointmentId=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, noopLogger{})

			rec := doRequest(h, tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq, "use case не должен вызываться")
		})
	}
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "professional not found", err: getAvailableSlots.ErrProfessionalNotFound, wantStatus: http.StatusNotFound},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "settings not found", err: getAvailableSlots.ErrSettingsNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			h := NewHandler(uc, noopLogger{})

			rec := doRequest(h, "/api/v1/available-slots?professionalId=1&date=2026-03-10&serviceIds=1")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
