package cancel_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/pkg/ptr"
)

type fakeRepo struct {
	byToken   *domain.Reservation
	byID      *domain.Reservation
	markErr   error
	marked    bool
	lastID    string
	lastMotif string
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.byID == nil || f.byID.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.byID, nil
}

func (f *fakeRepo) GetByToken(_ context.Context, token string) (*domain.Reservation, error) {
	if f.byToken == nil || f.byToken.CancelToken != token {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.byToken, nil
}

func (f *fakeRepo) MarkCancelled(_ context.Context, id string, reason string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = true
	f.lastID = id
	f.lastMotif = reason
	return nil
}

type fakeCalendar struct {
	deleted []string
	err     error
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return f.err
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) SendCancellation(_ *domain.Reservation, _ string) error {
	f.sent++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            "res-1",
		CustomerName:  "Juan Pérez",
		CustomerEmail: "juan.perez@example.com",
		Date:          time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
		Time:          "09:30",
		Status:        domain.StatusConfirmed,
		CancelToken:   "token-abc",
	}
}

func TestExecute_CancelByToken(t *testing.T) {
	repo := &fakeRepo{byToken: activeReservation()}
	mail := &fakeMailer{}
	uc := NewUseCase(repo, nil, mail, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	require.NoError(t, err)

	assert.True(t, repo.marked)
	assert.Equal(t, "res-1", repo.lastID)
	assert.Equal(t, domain.DefaultCancellationReason, repo.lastMotif)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, 1, mail.sent)
}

func TestExecute_CancelByIDWithReason(t *testing.T) {
	repo := &fakeRepo{byID: activeReservation()}
	uc := NewUseCase(repo, nil, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:     "res-1",
		Reason: ptr.Ptr("cliente avisó por teléfono"),
	})
	require.NoError(t, err)

	assert.Equal(t, "cliente avisó por teléfono", repo.lastMotif)
	assert.Equal(t, "cliente avisó por teléfono", resp.CancellationReason)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nil, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "inexistente"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_AlreadyFinalized(t *testing.T) {
	res := activeReservation()
	res.Status = domain.StatusCancelled
	repo := &fakeRepo{byToken: res}
	uc := NewUseCase(repo, nil, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.False(t, repo.marked)
}

func TestExecute_FinalizedConcurrently(t *testing.T) {
	repo := &fakeRepo{byToken: activeReservation(), markErr: reservationRepo.ErrNotActive}
	uc := NewUseCase(repo, nil, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestExecute_ValidatesIdentifiers(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nil, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Token: "t", ID: "i"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DeletesMirroredEvent(t *testing.T) {
	res := activeReservation()
	res.CalendarEventID = ptr.Ptr("evt-9")
	repo := &fakeRepo{byToken: res}
	cal := &fakeCalendar{}
	uc := NewUseCase(repo, cal, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"evt-9"}, cal.deleted)
}

func TestExecute_CalendarFailureIgnored(t *testing.T) {
	res := activeReservation()
	res.CalendarEventID = ptr.Ptr("evt-9")
	repo := &fakeRepo{byToken: res}
	cal := &fakeCalendar{err: errors.New("calendar down")}
	uc := NewUseCase(repo, cal, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_MailFailureIgnored(t *testing.T) {
	repo := &fakeRepo{byToken: activeReservation()}
	mail := &fakeMailer{err: errors.New("smtp down")}
	uc := NewUseCase(repo, nil, mail, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "token-abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, mail.sent)
}
