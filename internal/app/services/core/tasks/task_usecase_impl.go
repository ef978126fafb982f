package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/timeexpr"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
)

type taskUsecase struct {
	TaskRepo   contracts.TaskRepository
	TaskClient contracts.TaskClient
	Calendar   contracts.CalendarClient
	Log        *zap.Logger
	now        func() time.Time
}

func NewTaskUsecase(
	taskRepo contracts.TaskRepository,
	taskClient contracts.TaskClient,
	calendar contracts.CalendarClient,
	log *zap.Logger,
) contracts.TaskUsecase {
	return &taskUsecase{
		TaskRepo:   taskRepo,
		TaskClient: taskClient,
		Calendar:   calendar,
		Log:        log,
		now:        time.Now,
	}
}

// CreateTask registers a deadline: the external task list gets the entry,
// the calendar gets a "Deadline:" marker, and the local record backs the
// reminder worker. Tasks without an explicit time fall due at 23:59.
func (uc *taskUsecase) CreateTask(ctx context.Context, request *requests.CreateTask) (string, error) {
	now := uc.now().In(utils.TimezoneWIB)
	resolution, err := timeexpr.Resolve(now, request.Day, request.TimeStart, "")
	if err != nil {
		return "", err
	}

	due := resolution.Start
	if !resolution.HadExplicitTime {
		due = time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 0, 0, utils.TimezoneWIB)
	}

	if uc.TaskClient != nil {
		item := &contracts.TaskItem{
			Title: request.Event,
			Due:   utils.FormatRFC3339Local(due),
		}
		if _, err := uc.TaskClient.InsertTask(ctx, item); err != nil {
			uc.Log.Warn("task list insert failed, keeping local record",
				zap.String(constvars.LoggingActivityKey, request.Event),
				zap.Error(err),
			)
		}
	}

	if uc.Calendar != nil {
		if _, err := uc.Calendar.InsertEvent(ctx, deadlineMarkerEvent(request.Event, due, resolution.HadExplicitTime)); err != nil {
			uc.Log.Warn("calendar insert failed for deadline marker",
				zap.String(constvars.LoggingActivityKey, request.Event),
				zap.Error(err),
			)
		}
	}

	task := &models.Task{
		Content:   request.Event,
		Date:      due,
		Notified:  false,
		CreatedAt: now,
	}
	taskID, err := uc.TaskRepo.CreateTask(ctx, task)
	if err != nil {
		return "", err
	}

	uc.Log.Info("task created",
		zap.String(constvars.LoggingScheduleIDKey, taskID),
		zap.Time(constvars.LoggingSlotEndKey, due),
	)
	return fmt.Sprintf(constvars.ChatTaskCreatedMessageFormat, request.Event), nil
}

// deadlineMarkerEvent marks a thirty-minute block starting at a timed
// deadline; date-only deadlines become an all-day marker instead.
func deadlineMarkerEvent(title string, due time.Time, timed bool) *contracts.CalendarEvent {
	event := &contracts.CalendarEvent{
		Summary: fmt.Sprintf("Deadline: %s", title),
	}
	if timed {
		event.Start = contracts.EventTime{
			DateTime: utils.FormatRFC3339Local(due),
			TimeZone: "Asia/Jakarta",
		}
		event.End = contracts.EventTime{
			DateTime: utils.FormatRFC3339Local(due.Add(30 * time.Minute)),
			TimeZone: "Asia/Jakarta",
		}
		return event
	}
	event.Start = contracts.EventTime{Date: utils.FormatDateYMD(due)}
	event.End = contracts.EventTime{Date: utils.FormatDateYMD(due.AddDate(0, 0, 1))}
	return event
}
