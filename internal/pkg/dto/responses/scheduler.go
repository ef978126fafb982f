package responses

import "time"

// AutoScheduleResult is the caller-facing outcome of one scheduling run.
// Ok=false with a message is the designed "no capacity" answer, not an error.
type AutoScheduleResult struct {
	Ok       bool          `json:"ok"`
	Message  string        `json:"message"`
	Schedule *ScheduleView `json:"schedule,omitempty"`
}

type ScheduleView struct {
	ID              string    `json:"id,omitempty"`
	Content         string    `json:"content"`
	Date            time.Time `json:"date"`
	EndDate         time.Time `json:"end_date,omitempty"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	Auto            bool      `json:"auto"`
}

type ScheduleQueryResult struct {
	Message   string         `json:"message"`
	Schedules []ScheduleView `json:"schedules"`
}
