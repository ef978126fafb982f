package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collector gathers busy intervals from the calendar, the persisted
// schedule store and the task list. Each source is queried with its own
// timeout; a failing source contributes zero intervals and never aborts
// the run.
type Collector struct {
	Calendar      contracts.CalendarClient
	Schedules     contracts.ScheduleRepository
	Tasks         contracts.TaskClient
	Log           *zap.Logger
	SourceTimeout time.Duration
}

func NewCollector(
	calendar contracts.CalendarClient,
	schedules contracts.ScheduleRepository,
	tasks contracts.TaskClient,
	log *zap.Logger,
	sourceTimeout time.Duration,
) *Collector {
	return &Collector{
		Calendar:      calendar,
		Schedules:     schedules,
		Tasks:         tasks,
		Log:           log,
		SourceTimeout: sourceTimeout,
	}
}

// Collect queries all three sources concurrently over [windowStart, windowEnd)
// and returns the merged busy intervals.
func (c *Collector) Collect(ctx context.Context, windowStart, windowEnd time.Time) []Interval {
	var results [3][]Interval

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		results[0] = c.collectCalendar(egCtx, windowStart, windowEnd)
		return nil
	})
	eg.Go(func() error {
		results[1] = c.collectSchedules(egCtx, windowStart, windowEnd)
		return nil
	})
	eg.Go(func() error {
		results[2] = c.collectTasks(egCtx, windowStart, windowEnd)
		return nil
	})
	_ = eg.Wait()

	all := make([]Interval, 0, len(results[0])+len(results[1])+len(results[2]))
	all = append(all, results[0]...)
	all = append(all, results[1]...)
	all = append(all, results[2]...)
	return MergeIntervals(all)
}

func (c *Collector) collectCalendar(ctx context.Context, windowStart, windowEnd time.Time) []Interval {
	if c.Calendar == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.SourceTimeout)
	defer cancel()

	events, err := c.Calendar.ListEvents(ctx, windowStart, windowEnd)
	if err != nil {
		c.Log.Warn("busy source failed, skipping",
			zap.String(constvars.LoggingSourceKey, "calendar"),
			zap.Error(err),
		)
		return nil
	}

	intervals := make([]Interval, 0, len(events))
	for _, event := range events {
		start, startOK := eventStart(event.Start)
		end, endOK := eventEnd(event.End)
		if !startOK || !endOK || !end.After(start) {
			continue
		}
		intervals = append(intervals, Interval{
			Start:  start,
			End:    end,
			Source: fmt.Sprintf("calendar:%s", event.Summary),
		})
	}
	return intervals
}

func (c *Collector) collectSchedules(ctx context.Context, windowStart, windowEnd time.Time) []Interval {
	if c.Schedules == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.SourceTimeout)
	defer cancel()

	records, err := c.Schedules.FindByDateRange(ctx, windowStart, windowEnd)
	if err != nil {
		c.Log.Warn("busy source failed, skipping",
			zap.String(constvars.LoggingSourceKey, "schedules"),
			zap.Error(err),
		)
		return nil
	}

	intervals := make([]Interval, 0, len(records))
	for _, record := range records {
		end := record.Date.Add(time.Hour)
		if record.EndDate != nil {
			end = *record.EndDate
		}
		intervals = append(intervals, Interval{
			Start:  record.Date,
			End:    end,
			Source: fmt.Sprintf("schedule:%s", record.Content),
		})
	}
	return intervals
}

func (c *Collector) collectTasks(ctx context.Context, windowStart, windowEnd time.Time) []Interval {
	if c.Tasks == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.SourceTimeout)
	defer cancel()

	items, err := c.Tasks.ListTasks(ctx)
	if err != nil {
		c.Log.Warn("busy source failed, skipping",
			zap.String(constvars.LoggingSourceKey, "tasks"),
			zap.Error(err),
		)
		return nil
	}

	intervals := make([]Interval, 0, len(items))
	for _, item := range items {
		if item.Due == "" {
			continue
		}
		interval, ok := deadlineInterval(item.Due, item.Title)
		if !ok {
			continue
		}
		if !interval.End.After(windowStart) || !interval.Start.Before(windowEnd) {
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// CountDeadlinesOn returns how many task deadlines fall inside the day's
// work window. Dues outside the window, including date-only dues, add no
// pressure. A failing source counts as zero.
func (c *Collector) CountDeadlinesOn(ctx context.Context, day time.Time, window WorkWindow) int {
	if c.Tasks == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, c.SourceTimeout)
	defer cancel()

	items, err := c.Tasks.ListTasks(ctx)
	if err != nil {
		c.Log.Warn("deadline count failed, assuming zero",
			zap.String(constvars.LoggingSourceKey, "tasks"),
			zap.Error(err),
		)
		return 0
	}

	dayStart := window.DayStart(day)
	dayEnd := window.DayEnd(day)

	count := 0
	for _, item := range items {
		due, ok := parseDue(item.Due)
		if !ok {
			continue
		}
		if !due.Before(dayStart) && due.Before(dayEnd) {
			count++
		}
	}
	return count
}

// deadlineInterval turns a task due value into a busy block. A timed
// deadline blocks the hour ending at the due instant; a date-only
// deadline blocks 20:00 to 21:00 on the due day.
func deadlineInterval(due, title string) (Interval, bool) {
	source := fmt.Sprintf("deadline:%s", title)

	if t, err := time.Parse(time.RFC3339, due); err == nil {
		local := t.In(utils.TimezoneWIB)
		return Interval{Start: local.Add(-time.Hour), End: local, Source: source}, true
	}
	if d, err := time.ParseInLocation("2006-01-02", due, utils.TimezoneWIB); err == nil {
		start := time.Date(d.Year(), d.Month(), d.Day(), 20, 0, 0, 0, utils.TimezoneWIB)
		return Interval{Start: start, End: start.Add(time.Hour), Source: source}, true
	}
	return Interval{}, false
}

func parseDue(due string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, due); err == nil {
		return t.In(utils.TimezoneWIB), true
	}
	if d, err := time.ParseInLocation("2006-01-02", due, utils.TimezoneWIB); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// eventStart extracts the absolute instant an event begins. A date-only
// all-day start is midnight of that date.
func eventStart(et contracts.EventTime) (time.Time, bool) {
	if et.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, et.DateTime); err == nil {
			return t.In(utils.TimezoneWIB), true
		}
		return time.Time{}, false
	}
	if et.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", et.Date, utils.TimezoneWIB); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// eventEnd extracts the absolute instant an event ends. A date-only
// all-day end blocks through 23:59:59 of the listed end date.
func eventEnd(et contracts.EventTime) (time.Time, bool) {
	if et.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, et.DateTime); err == nil {
			return t.In(utils.TimezoneWIB), true
		}
		return time.Time{}, false
	}
	if et.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", et.Date, utils.TimezoneWIB); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, utils.TimezoneWIB), true
		}
	}
	return time.Time{}, false
}
