package schedules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/responses"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/timeexpr"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepo contracts.ScheduleRepository
	Calendar     contracts.CalendarClient
	Log          *zap.Logger
	now          func() time.Time
}

func NewScheduleUsecase(
	scheduleRepo contracts.ScheduleRepository,
	calendar contracts.CalendarClient,
	log *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepo: scheduleRepo,
		Calendar:     calendar,
		Log:          log,
		now:          time.Now,
	}
}

// CreateSchedule resolves the day expression into absolute instants, mirrors
// the entry into the external calendar best-effort, and persists the record.
func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (string, error) {
	now := uc.now().In(utils.TimezoneWIB)
	resolution, err := timeexpr.Resolve(now, request.Day, request.TimeStart, request.TimeEnd)
	if err != nil {
		return "", err
	}

	var calendarEventID *string
	if uc.Calendar != nil {
		event := buildCalendarEvent(request.Event, resolution)
		inserted, err := uc.Calendar.InsertEvent(ctx, event)
		if err != nil {
			uc.Log.Warn("calendar insert failed, record kept without event id",
				zap.String(constvars.LoggingActivityKey, request.Event),
				zap.Error(err),
			)
		} else if inserted != nil && inserted.ID != "" {
			calendarEventID = &inserted.ID
		}
	}

	schedule := &models.Schedule{
		Content:         request.Event,
		Date:            resolution.Start,
		EndDate:         &resolution.End,
		CalendarEventID: calendarEventID,
		Auto:            false,
		CreatedAt:       now,
	}
	scheduleID, err := uc.ScheduleRepo.CreateSchedule(ctx, schedule)
	if err != nil {
		return "", err
	}

	uc.Log.Info("schedule created",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.Stringp(constvars.LoggingEventIDKey, calendarEventID),
	)
	return fmt.Sprintf(constvars.ChatScheduleCreatedMessageFormat, request.Event), nil
}

// QuerySchedules lists the persisted schedules falling inside the requested
// period, rendered as a chat-style message plus structured views.
func (uc *scheduleUsecase) QuerySchedules(ctx context.Context, request *requests.ScheduleQuery) (*responses.ScheduleQueryResult, error) {
	now := uc.now().In(utils.TimezoneWIB)
	start, end, err := periodWindow(now, request.Period, request.Date)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.ScheduleRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if len(schedules) == 0 {
		return &responses.ScheduleQueryResult{
			Message:   constvars.ChatEmptyScheduleMessage,
			Schedules: []responses.ScheduleView{},
		}, nil
	}

	views := make([]responses.ScheduleView, 0, len(schedules))
	var sb strings.Builder
	sb.WriteString(constvars.ChatScheduleListHeader)
	for _, schedule := range schedules {
		view := responses.ScheduleView{
			ID:      schedule.ID.Hex(),
			Content: schedule.Content,
			Date:    schedule.Date,
			Auto:    schedule.Auto,
		}
		if schedule.EndDate != nil {
			view.EndDate = *schedule.EndDate
		}
		if schedule.CalendarEventID != nil {
			view.CalendarEventID = *schedule.CalendarEventID
		}
		views = append(views, view)

		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(constvars.ChatScheduleListItemFormat,
			utils.FormatIndonesianDateTime(schedule.Date), schedule.Content))
	}

	return &responses.ScheduleQueryResult{
		Message:   sb.String(),
		Schedules: views,
	}, nil
}

// periodWindow translates a query period into an absolute WIB range.
// An explicit date overrides the period.
func periodWindow(now time.Time, period, date string) (time.Time, time.Time, error) {
	if date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, utils.TimezoneWIB)
		if err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrCannotParseTime(err, date)
		}
		return startOfDay(d), endOfDay(d), nil
	}

	switch period {
	case "daily", "today":
		return startOfDay(now), endOfDay(now), nil
	case "tomorrow":
		d := now.AddDate(0, 0, 1)
		return startOfDay(d), endOfDay(d), nil
	case "day_after_tomorrow":
		d := now.AddDate(0, 0, 2)
		return startOfDay(d), endOfDay(d), nil
	case "this_week":
		monday := startOfISOWeek(now)
		return monday, endOfDay(monday.AddDate(0, 0, 6)), nil
	case "next_week":
		monday := startOfISOWeek(now).AddDate(0, 0, 7)
		return monday, endOfDay(monday.AddDate(0, 0, 6)), nil
	case "monthly":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, utils.TimezoneWIB)
		return first, first.AddDate(0, 1, 0).Add(-time.Second), nil
	default:
		return time.Time{}, time.Time{}, exceptions.ErrInvalidPeriod(period)
	}
}

func startOfDay(t time.Time) time.Time {
	local := t.In(utils.TimezoneWIB)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, utils.TimezoneWIB)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}

// startOfISOWeek returns the Monday 00:00 of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func buildCalendarEvent(summary string, resolution *timeexpr.Resolution) *contracts.CalendarEvent {
	event := &contracts.CalendarEvent{Summary: summary}
	if resolution.Recurrence != "" {
		event.Recurrence = []string{resolution.Recurrence}
	}
	if resolution.HadExplicitTime {
		event.Start = contracts.EventTime{
			DateTime: utils.FormatRFC3339Local(resolution.Start),
			TimeZone: "Asia/Jakarta",
		}
		event.End = contracts.EventTime{
			DateTime: utils.FormatRFC3339Local(resolution.End),
			TimeZone: "Asia/Jakarta",
		}
		return event
	}
	event.Start = contracts.EventTime{Date: utils.FormatDateYMD(resolution.Start)}
	event.End = contracts.EventTime{Date: utils.FormatDateYMD(resolution.Start.AddDate(0, 0, 1))}
	return event
}
