package requests

// AutoSchedule is a typed request struct so the scheduler's input contract
// stays explicit at the chat-router hand-off.
type AutoSchedule struct {
	Activity        string `json:"activity" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0,lte=780"`
}

type CreateSchedule struct {
	Event     string `json:"event" validate:"required"`
	Day       string `json:"day" validate:"required"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

type CreateTask struct {
	Event     string `json:"event" validate:"required"`
	Day       string `json:"day" validate:"required"`
	TimeStart string `json:"time_start"`
}

type ScheduleQuery struct {
	Period string `json:"period" validate:"required,oneof=daily today tomorrow day_after_tomorrow this_week next_week monthly"`
	Date   string `json:"date"`
}
