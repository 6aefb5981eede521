package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/internal/integrations/googlecalendar"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

type fakeRepo struct {
	active   []*domain.Reservation
	count    int
	countErr error
	listErr  error
}

func (f *fakeRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.active, f.listErr
}

func (f *fakeRepo) CountActiveByDate(_ context.Context, _ time.Time) (int, error) {
	return f.count, f.countErr
}

type fakeCalendar struct {
	intervals []googlecalendar.BusyInterval
	err       error
}

func (f *fakeCalendar) ListBusyIntervals(_ context.Context, _ time.Time) ([]googlecalendar.BusyInterval, error) {
	return f.intervals, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRules() *domain.AvailabilityRules {
	return &domain.AvailabilityRules{
		WorkDays: map[time.Weekday]bool{
			time.Tuesday: true, time.Wednesday: true, time.Thursday: true,
			time.Friday: true, time.Saturday: true,
		},
		Holidays:                      map[string]bool{"2026-12-25": true},
		WorkStart:                     "09:00",
		WorkEnd:                       "11:00",
		SlotDurationMinutes:           30,
		MaxReservationsPerDay:         12,
		MaxReservationsPerCustomerDay: 2,
		Location:                      time.UTC,
	}
}

// Miércoles laborable
var workDate = time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)

func activeAt(slot types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		ID:     "res-" + slot.String(),
		Date:   workDate,
		Time:   slot,
		Status: domain.StatusConfirmed,
	}
}

func TestGenerateSlots(t *testing.T) {
	slots := generateSlots("09:00", "11:00", 30)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_LastSlotMustFitCompletely(t *testing.T) {
	// 09:00-10:15 con turnos de 30: el turno de 10:00 terminaría 10:30
	slots := generateSlots("09:00", "10:15", 30)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestGenerateSlots_DegenerateConfigs(t *testing.T) {
	assert.Empty(t, generateSlots("11:00", "09:00", 30))
	assert.Empty(t, generateSlots("09:00", "09:00", 30))
	assert.Empty(t, generateSlots("09:00", "11:00", 0))
}

func TestGetAvailability_AllSlotsFree(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, testRules(), nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGetAvailability_NonWorkDay(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, testRules(), nopLogger{})

	monday := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	slots, err := svc.GetAvailability(context.Background(), monday)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_Holiday(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, testRules(), nopLogger{})

	// 2026-12-25 cae viernes, día laborable si no fuera feriado
	holiday := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)
	slots, err := svc.GetAvailability(context.Background(), holiday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ReservedSlotExcluded(t *testing.T) {
	repo := &fakeRepo{active: []*domain.Reservation{activeAt("09:30")}, count: 1}
	svc := NewService(repo, nil, testRules(), nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, slots)
}

func TestGetAvailability_DayAtCapacity(t *testing.T) {
	rules := testRules()
	rules.MaxReservationsPerDay = 1
	repo := &fakeRepo{active: []*domain.Reservation{activeAt("09:00")}, count: 1}
	svc := NewService(repo, nil, rules, nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_TruncatedToRemainingCapacity(t *testing.T) {
	rules := testRules()
	rules.MaxReservationsPerDay = 2
	repo := &fakeRepo{active: []*domain.Reservation{activeAt("10:00")}, count: 1}
	svc := NewService(repo, nil, rules, nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	// Quedan tres huecos libres pero un solo cupo
	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestGetAvailability_CalendarOverlapExcluded(t *testing.T) {
	// Intervalo 09:15-09:45 pisa los turnos de 09:00 y 09:30
	busy := googlecalendar.BusyInterval{
		Start: time.Date(2026, time.June, 3, 9, 15, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 3, 9, 45, 0, 0, time.UTC),
	}
	svc := NewService(&fakeRepo{}, &fakeCalendar{intervals: []googlecalendar.BusyInterval{busy}}, testRules(), nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, slots)
}

func TestGetAvailability_CalendarBoundaryTouchIsNotOverlap(t *testing.T) {
	// Termina exactamente donde empieza el turno de 09:30
	busy := googlecalendar.BusyInterval{
		Start: time.Date(2026, time.June, 3, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 3, 9, 30, 0, 0, time.UTC),
	}
	svc := NewService(&fakeRepo{}, &fakeCalendar{intervals: []googlecalendar.BusyInterval{busy}}, testRules(), nopLogger{})

	slots, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:30", "10:00", "10:30"}, slots)
}

func TestGetAvailability_CalendarUnavailable(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCalendar{err: errors.New("timeout")}, testRules(), nopLogger{})

	_, err := svc.GetAvailability(context.Background(), workDate)
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestGetAvailability_RepositoryUnavailable(t *testing.T) {
	svc := NewService(&fakeRepo{countErr: errors.New("connection refused")}, nil, testRules(), nopLogger{})

	_, err := svc.GetAvailability(context.Background(), workDate)
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestGetAvailability_Idempotent(t *testing.T) {
	repo := &fakeRepo{active: []*domain.Reservation{activeAt("09:30")}, count: 1}
	svc := NewService(repo, nil, testRules(), nopLogger{})

	first, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	second, err := svc.GetAvailability(context.Background(), workDate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIsSlotAvailable(t *testing.T) {
	repo := &fakeRepo{active: []*domain.Reservation{activeAt("09:30")}, count: 1}
	svc := NewService(repo, nil, testRules(), nopLogger{})

	free, err := svc.IsSlotAvailable(context.Background(), workDate, "10:00")
	require.NoError(t, err)
	assert.True(t, free)

	taken, err := svc.IsSlotAvailable(context.Background(), workDate, "09:30")
	require.NoError(t, err)
	assert.False(t, taken)

	offGrid, err := svc.IsSlotAvailable(context.Background(), workDate, "09:15")
	require.NoError(t, err)
	assert.False(t, offGrid)
}
