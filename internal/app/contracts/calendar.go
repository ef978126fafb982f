package contracts

import (
	"context"
	"time"
)

// EventTime carries either an RFC3339 date-time with explicit offset or a
// bare YYYY-MM-DD date for all-day events, mirroring the calendar API wire
// format.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type CalendarEvent struct {
	ID         string    `json:"id,omitempty"`
	Summary    string    `json:"summary"`
	Start      EventTime `json:"start"`
	End        EventTime `json:"end"`
	Recurrence []string  `json:"recurrence,omitempty"`
}

// CalendarClient is the external calendar collaborator. The calendar id is
// bound at construction.
type CalendarClient interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]CalendarEvent, error)
	InsertEvent(ctx context.Context, event *CalendarEvent) (*CalendarEvent, error)
}
