package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysiverio/reservasBarberia/internal/service/availability"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

type fakeService struct {
	slots []types.TimeString
	err   error
}

func (f *fakeService) GetAvailability(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.slots, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_ReturnsSlots(t *testing.T) {
	h := NewHandler(&fakeService{slots: []types.TimeString{"09:00", "09:30"}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-06-03", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2026-06-03", resp.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
}

func TestHandle_EmptyDayStillAnArray(t *testing.T) {
	h := NewHandler(&fakeService{slots: []types.TimeString{}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-06-01", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-06-01","slots":[]}`, rec.Body.String())
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=03-06-2026", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_DependencyUnavailable(t *testing.T) {
	h := NewHandler(&fakeService{err: availability.ErrDependencyUnavailable}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-06-03", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
