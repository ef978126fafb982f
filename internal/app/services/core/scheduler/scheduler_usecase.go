package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/responses"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
)

type schedulerUsecase struct {
	Collector    *Collector
	ScheduleRepo contracts.ScheduleRepository
	Calendar     contracts.CalendarClient
	Log          *zap.Logger
	Config       *config.InternalConfig
	now          func() time.Time
}

func NewSchedulerUsecase(
	collector *Collector,
	scheduleRepo contracts.ScheduleRepository,
	calendar contracts.CalendarClient,
	log *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.SchedulerUsecase {
	return &schedulerUsecase{
		Collector:    collector,
		ScheduleRepo: scheduleRepo,
		Calendar:     calendar,
		Log:          log,
		Config:       internalConfig,
		now:          time.Now,
	}
}

// AutoSchedule scans the coming days for the best free slot of the requested
// duration and books it. No free slot is a normal outcome, returned with
// Ok=false; only infrastructure failure produces an error.
func (uc *schedulerUsecase) AutoSchedule(ctx context.Context, request *requests.AutoSchedule) (*responses.AutoScheduleResult, error) {
	now := uc.now().In(utils.TimezoneWIB)
	durationMinutes := request.DurationMinutes
	if durationMinutes <= 0 {
		durationMinutes = uc.Config.Scheduler.DefaultDurationInMinutes
	}
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(uc.Config.Scheduler.CandidateStepInMinutes) * time.Minute
	window := WorkWindow{
		StartHour: uc.Config.Scheduler.WorkDayStartHour,
		EndHour:   uc.Config.Scheduler.WorkDayEndHour,
	}

	windowStart := now
	windowEnd := now.AddDate(0, 0, uc.Config.Scheduler.HorizonDays)
	busy := uc.Collector.Collect(ctx, windowStart, windowEnd)

	candidates := []Candidate{}
	for dayOffset := 0; dayOffset < uc.Config.Scheduler.HorizonDays; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		deadlineCount := uc.Collector.CountDeadlinesOn(ctx, day, window)
		for _, slot := range DayFreeSlots(day, busy, window) {
			latestStart := slot.End.Add(-duration)
			for start := slot.Start; !start.After(latestStart); start = start.Add(step) {
				candidates = append(candidates, Candidate{
					Start: start,
					End:   start.Add(duration),
					Score: ScoreSlot(now, start, durationMinutes, deadlineCount, window),
				})
			}
		}
	}

	uc.Log.Info("candidate enumeration done",
		zap.String(constvars.LoggingActivityKey, request.Activity),
		zap.Int(constvars.LoggingDurationMinKey, durationMinutes),
		zap.Int(constvars.LoggingCandidateKey, len(candidates)),
	)

	if len(candidates) == 0 {
		return &responses.AutoScheduleResult{
			Ok:      false,
			Message: constvars.ChatNoFreeSlotMessage,
		}, nil
	}

	// Strictly-greater scan keeps the earliest-enumerated candidate on ties.
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	uc.Log.Info("slot selected",
		zap.String(constvars.LoggingActivityKey, request.Activity),
		zap.Time(constvars.LoggingSlotStartKey, best.Start),
		zap.Time(constvars.LoggingSlotEndKey, best.End),
		zap.Float64(constvars.LoggingScoreKey, best.Score),
	)

	var calendarEventID *string
	if uc.Calendar != nil {
		event := &contracts.CalendarEvent{
			Summary: request.Activity,
			Start:   contracts.EventTime{DateTime: utils.FormatRFC3339Local(best.Start), TimeZone: "Asia/Jakarta"},
			End:     contracts.EventTime{DateTime: utils.FormatRFC3339Local(best.End), TimeZone: "Asia/Jakarta"},
		}
		inserted, err := uc.Calendar.InsertEvent(ctx, event)
		if err != nil {
			uc.Log.Warn("calendar insert failed, record kept without event id",
				zap.String(constvars.LoggingActivityKey, request.Activity),
				zap.Error(err),
			)
		} else if inserted != nil && inserted.ID != "" {
			calendarEventID = &inserted.ID
		}
	}

	schedule := &models.Schedule{
		Content:         request.Activity,
		Date:            best.Start,
		EndDate:         &best.End,
		CalendarEventID: calendarEventID,
		Auto:            true,
		CreatedAt:       now,
	}
	scheduleID, err := uc.ScheduleRepo.CreateSchedule(ctx, schedule)
	if err != nil {
		uc.Log.Error("schedule record persist failed",
			zap.String(constvars.LoggingActivityKey, request.Activity),
			zap.Error(err),
		)
	} else {
		uc.Log.Info("schedule record created",
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Stringp(constvars.LoggingEventIDKey, calendarEventID),
		)
	}

	view := &responses.ScheduleView{
		ID:      scheduleID,
		Content: request.Activity,
		Date:    best.Start,
		EndDate: best.End,
		Auto:    true,
	}
	if calendarEventID != nil {
		view.CalendarEventID = *calendarEventID
	}

	return &responses.AutoScheduleResult{
		Ok: true,
		Message: fmt.Sprintf(
			constvars.ChatScheduledMessageFormat,
			request.Activity,
			utils.FormatIndonesianDateTime(best.Start),
			utils.FormatTimeHM(best.End),
		),
		Schedule: view,
	}, nil
}
