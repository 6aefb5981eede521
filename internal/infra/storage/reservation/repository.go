package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/pkg/dbmetrics"
	"github.com/ysiverio/reservasBarberia/pkg/psqlbuilder"
)

// slotIndexName is the partial unique index over (date, time) restricted
// to active statuses. A 23505 on it means another active reservation
// holds the slot.
const slotIndexName = "ux_reservations_active_slot"

var reservationColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"date",
	"time",
	"status",
	"calendar_event_id",
	"cancel_token",
	"cancellation_reason",
	"cancelled_at",
	"rescheduled_to",
	"created_at",
	"updated_at",
}

// Repository repositorio de reservas sobre Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de reservas
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation, claiming its (date, time) slot.
//
// The insert is the authoritative double-booking guard: the partial
// unique index rejects a second active reservation for the same slot,
// and that violation is surfaced as ErrSlotTaken. Availability checks
// done before calling Create are advisory only.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"date",
			"time",
			"status",
			"calendar_event_id",
			"cancel_token",
		).
		Values(
			res.ID,
			res.CustomerName,
			res.CustomerEmail,
			res.Date,
			res.Time,
			res.Status,
			res.CalendarEventID,
			res.CancelToken,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID obtiene una reserva por su id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByToken obtiene una reserva por su token de cancelación
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	return r.getByColumn(ctx, "cancel_token", token)
}

func (r *Repository) getByColumn(ctx context.Context, column, value string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: getByColumn - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetByDateRange lists reservations with date in [start, end], ordered
// chronologically. With activeOnly, terminal records are excluded.
func (r *Repository) GetByDateRange(ctx context.Context, start, end time.Time, activeOnly bool) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC, time ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	// Inside the slot-claim transaction the day's rows are locked so the
	// cap checks and the insert see a consistent snapshot.
	if dbmetrics.IsInTransaction(ctx) && start.Equal(end) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetActiveByDate lists the active reservations of one business date.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.GetByDateRange(ctx, date, date, true)
}

// CountActiveByDate counts active reservations on date. Used for the
// per-day cap.
func (r *Repository) CountActiveByDate(ctx context.Context, date time.Time) (int, error) {
	return r.countActive(ctx, squirrel.Eq{"date": date})
}

// CountActiveByEmailAndDate counts active reservations of one customer
// on date. Used for the per-customer cap.
func (r *Repository) CountActiveByEmailAndDate(ctx context.Context, email string, date time.Time) (int, error) {
	return r.countActive(ctx, squirrel.Eq{"customer_email": email, "date": date})
}

func (r *Repository) countActive(ctx context.Context, where squirrel.Eq) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(where).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countActive - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// MarkCancelled transitions an active reservation to CANCELLED.
//
// The status filter in the WHERE clause is the last terminal-state gate:
// if a concurrent transition already finalized the record, zero rows are
// affected and ErrNotActive is returned.
func (r *Repository) MarkCancelled(ctx context.Context, id string, reason string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": activeStatusStrings()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, id, query, args)
}

// MarkRescheduled finalizes an active reservation as RESCHEDULED,
// recording the id of the record that supersedes it.
func (r *Repository) MarkRescheduled(ctx context.Context, id string, newID string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusRescheduled).
		Set("rescheduled_to", newID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": activeStatusStrings()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRescheduled - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, id, query, args)
}

// SetCalendarEventID stores the mirrored calendar event reference.
func (r *Repository) SetCalendarEventID(ctx context.Context, id string, eventID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("calendar_event_id", eventID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// Delete removes a reservation physically. Only used as compensating
// rollback right after a failed mandatory post-creation step; normal
// flows keep history via MarkCancelled/MarkRescheduled.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (r *Repository) execConditional(ctx context.Context, id, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: execConditional - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: execConditional - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: distinguish a missing record from a finalized one.
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	return ErrNotActive
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.Date,
		&res.Time,
		&res.Status,
		&res.CalendarEventID,
		&res.CancelToken,
		&res.CancellationReason,
		&res.CancelledAt,
		&res.RescheduledTo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}
	return reservations, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// isSlotConflict detecta la violación del índice único del slot
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == slotIndexName
}
