package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/internal/service/availability"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

type fakeRepo struct {
	createErr     error
	customerCount int
	dayCount      int

	created      *domain.Reservation
	storedEvent  string
	deleteCalled bool
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	res.CreatedAt = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	f.created = res
	return res, nil
}

func (f *fakeRepo) CountActiveByDate(_ context.Context, _ time.Time) (int, error) {
	return f.dayCount, nil
}

func (f *fakeRepo) CountActiveByEmailAndDate(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.customerCount, nil
}

func (f *fakeRepo) SetCalendarEventID(_ context.Context, _ string, eventID string) error {
	f.storedEvent = eventID
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ string) error {
	f.deleteCalled = true
	return nil
}

type fakeAvailability struct {
	free bool
	err  error
}

func (f *fakeAvailability) IsSlotAvailable(_ context.Context, _ time.Time, _ types.TimeString) (bool, error) {
	return f.free, f.err
}

type fakeCalendar struct {
	eventID string
	err     error
	calls   int
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ *domain.Reservation) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.eventID, nil
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) SendConfirmation(_ *domain.Reservation, _ string) error {
	f.sent++
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

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
		Holidays:                      map[string]bool{},
		WorkStart:                     "09:00",
		WorkEnd:                       "19:00",
		SlotDurationMinutes:           30,
		MaxReservationsPerDay:         12,
		MaxReservationsPerCustomerDay: 2,
		Location:                      time.UTC,
	}
}

var (
	testNow  = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		CustomerName:  "Juan Pérez",
		CustomerEmail: "Juan.Perez@example.com",
		Date:          testDate,
		Time:          "09:30",
	}
}

func newTestUseCase(repo *fakeRepo, avail *fakeAvailability, cal CalendarClient, mail Mailer, required bool) *UseCase {
	uc := NewUseCase(
		repo,
		avail,
		cal,
		mail,
		fakeTxManager{},
		testRules(),
		"https://reservas.example.com",
		required,
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, nil, mail, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "juan.perez@example.com", resp.CustomerEmail)
	assert.NotEmpty(t, resp.CancelToken)
	assert.Contains(t, resp.CancelURL, resp.CancelToken)
	assert.Equal(t, 1, mail.sent)
	require.NotNil(t, repo.created)
	assert.Equal(t, resp.ID, repo.created.ID)
}

func TestExecute_InvalidEmail(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: true}, nil, nil, false)

	req := validRequest()
	req.CustomerEmail = "no-es-un-email"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestExecute_MissingName(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: true}, nil, nil, false)

	req := validRequest()
	req.CustomerName = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: true}, nil, nil, false)

	req := validRequest()
	req.Date = time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_CustomerLimitExceeded(t *testing.T) {
	repo := &fakeRepo{customerCount: 2}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, nil, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerLimitExceeded)
	assert.Nil(t, repo.created)
}

func TestExecute_DayLimitExceeded(t *testing.T) {
	repo := &fakeRepo{dayCount: 12}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, nil, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayLimitExceeded)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: false}, nil, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotTakenConcurrently(t *testing.T) {
	repo := &fakeRepo{createErr: reservationRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, nil, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_AvailabilityDependencyDown(t *testing.T) {
	avail := &fakeAvailability{err: availability.ErrDependencyUnavailable}
	uc := newTestUseCase(&fakeRepo{}, avail, nil, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_CalendarMirrorStored(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{eventID: "evt-123"}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, cal, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, cal.calls)
	assert.Equal(t, "evt-123", repo.storedEvent)
}

func TestExecute_RequiredCalendarFailureRollsBack(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{err: errors.New("calendar down")}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, cal, nil, true)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.True(t, repo.deleteCalled)
}

func TestExecute_OptionalCalendarFailureIgnored(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{err: errors.New("calendar down")}
	uc := newTestUseCase(repo, &fakeAvailability{free: true}, cal, nil, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, repo.deleteCalled)
	assert.Empty(t, repo.storedEvent)
}

func TestExecute_MailFailureDoesNotFailReservation(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp down")}
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: true}, nil, mail, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, mail.sent)
}

func TestExecute_TokenDiffersFromID(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeAvailability{free: true}, nil, nil, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, resp.ID, resp.CancelToken)
}
