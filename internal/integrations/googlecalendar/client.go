package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ysiverio/reservasBarberia/internal/domain"
)

// Client espejo de reservas sobre Google Calendar.
//
// Authenticates with a service-account JWT and mirrors each reservation
// as one event. Also exposes the day's busy intervals as a secondary
// occupancy source for the availability service.
type Client struct {
	svc         *calendar.Service
	calendarID  string
	location    *time.Location
	slotMinutes int
	timeout     time.Duration
	log         Logger
}

// NewClient builds the calendar client from a service-account
// credentials file.
func NewClient(
	ctx context.Context,
	credentialsFile string,
	calendarID string,
	location *time.Location,
	slotMinutes int,
	timeout time.Duration,
	log Logger,
) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read credentials: %v", ErrInternal, err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrInternal, err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrInternal, err)
	}

	return &Client{
		svc:         svc,
		calendarID:  calendarID,
		location:    location,
		slotMinutes: slotMinutes,
		timeout:     timeout,
		log:         log,
	}, nil
}

// ListBusyIntervals returns the occupied intervals of the business date.
// A transport failure maps to ErrUnavailable so callers fail the whole
// availability request instead of reporting a falsely free day.
func (c *Client) ListBusyIntervals(ctx context.Context, date time.Time) ([]BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := c.svc.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrUnavailable, err)
	}

	intervals := make([]BusyInterval, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Status == "cancelled" {
			continue
		}
		start, end, ok := c.eventInterval(item, dayStart, dayEnd)
		if !ok {
			c.log.Warn("ListBusyIntervals: skipping event %s with unparseable times", item.Id)
			continue
		}
		intervals = append(intervals, BusyInterval{Start: start, End: end})
	}

	return intervals, nil
}

// eventInterval extracts the event's interval, treating all-day events
// as covering the whole business date.
func (c *Client) eventInterval(item *calendar.Event, dayStart, dayEnd time.Time) (time.Time, time.Time, bool) {
	if item.Start == nil || item.End == nil {
		return time.Time{}, time.Time{}, false
	}

	if item.Start.DateTime != "" && item.End.DateTime != "" {
		start, err1 := time.Parse(time.RFC3339, item.Start.DateTime)
		end, err2 := time.Parse(time.RFC3339, item.End.DateTime)
		if err1 != nil || err2 != nil {
			return time.Time{}, time.Time{}, false
		}
		return start.In(c.location), end.In(c.location), true
	}

	if item.Start.Date != "" {
		return dayStart, dayEnd, true
	}
	return time.Time{}, time.Time{}, false
}

// CreateEvent mirrors a reservation as a calendar event and returns the
// event id for the weak back-reference.
func (c *Client) CreateEvent(ctx context.Context, res *domain.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start, err := res.Time.At(res.Date, c.location)
	if err != nil {
		return "", fmt.Errorf("%w: invalid slot time: %v", ErrInternal, err)
	}
	end := start.Add(time.Duration(c.slotMinutes) * time.Minute)

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Reserva - %s", res.CustomerName),
		Description: fmt.Sprintf("Cliente: %s\nEmail: %s", res.CustomerName, res.CustomerEmail),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		Transparency: "transparent",
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEventNotCreated, err)
	}

	c.log.Info("CreateEvent: mirrored reservation id=%s as event %s", res.ID, created.Id)
	return created.Id, nil
}

// DeleteEvent removes a mirrored event. An already-deleted event is not
// an error.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			c.log.Warn("DeleteEvent: event %s already gone", eventID)
			return nil
		}
		return fmt.Errorf("%w: delete event %s: %v", ErrUnavailable, eventID, err)
	}
	return nil
}
