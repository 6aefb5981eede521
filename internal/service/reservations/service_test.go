package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/pkg/ptr"
)

type fakeRepo struct {
	byToken *domain.Reservation
	byDate  []*domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*domain.Reservation, error) {
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeRepo) GetByToken(_ context.Context, token string) (*domain.Reservation, error) {
	if f.byToken == nil || f.byToken.CancelToken != token {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.byToken, nil
}

func (f *fakeRepo) GetByDateRange(_ context.Context, _, _ time.Time, _ bool) ([]*domain.Reservation, error) {
	return f.byDate, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByToken(t *testing.T) {
	cancelledAt := time.Date(2026, time.June, 2, 15, 0, 0, 0, time.UTC)
	res := &domain.Reservation{
		ID:                 "res-1",
		CustomerName:       "Juan Pérez",
		CustomerEmail:      "juan.perez@example.com",
		Date:               time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
		Time:               "09:30",
		Status:             domain.StatusCancelled,
		CancelToken:        "token-abc",
		CancellationReason: ptr.Ptr("no puedo ir"),
		CancelledAt:        &cancelledAt,
	}
	svc := NewService(&fakeRepo{byToken: res}, nopLogger{})

	resp, err := svc.GetByToken(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "2026-06-03", resp.Date)
	assert.Equal(t, "09:30", resp.Time)
	assert.Equal(t, "CANCELLED", resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, cancelledAt.Format(time.RFC3339), *resp.CancelledAt)
}

func TestGetByToken_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByToken(context.Background(), "inexistente")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByToken_EmptyToken(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByDate_IncludesFinalized(t *testing.T) {
	date := time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{byDate: []*domain.Reservation{
		{ID: "res-1", Date: date, Time: "09:00", Status: domain.StatusConfirmed},
		{ID: "res-2", Date: date, Time: "09:30", Status: domain.StatusCancelled},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "CONFIRMED", resp.Reservations[0].Status)
	assert.Equal(t, "CANCELLED", resp.Reservations[1].Status)
}

func TestListByDate_EmptyDay(t *testing.T) {
	svc := NewService(&fakeRepo{byDate: []*domain.Reservation{}}, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
	assert.Empty(t, resp.Reservations)
}
