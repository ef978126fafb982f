// Package reminders runs the scheduled notification jobs: a morning digest
// of today's schedules and an hourly check for deadlines falling due soon.
package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	digestLockKey   = "reminders:digest:leader"
	deadlineLockKey = "reminders:deadline:leader"
)

// Worker owns the reminder cron jobs. Leader locks keep multi-instance
// deployments from sending duplicate notifications.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	scheduleRepo contracts.ScheduleRepository
	taskRepo     contracts.TaskRepository
	publisher    contracts.NotificationPublisher
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
	now          func() time.Time
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	scheduleRepo contracts.ScheduleRepository,
	taskRepo contracts.TaskRepository,
	publisher contracts.NotificationPublisher,
) *Worker {
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		scheduleRepo: scheduleRepo,
		taskRepo:     taskRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

// Start schedules both jobs. Cron specs come from config; an invalid spec
// falls back to the built-in default for that job.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New(cron.WithLocation(utils.TimezoneWIB))

	if _, err := c.AddFunc(w.cfg.Worker.MorningDigestCronSpec, func() { w.runMorningDigest(w.runCtx) }); err != nil {
		w.log.Warn("reminders.worker: invalid digest cron spec, using default", zap.Error(err))
		_, _ = c.AddFunc("0 6 * * *", func() { w.runMorningDigest(w.runCtx) })
	}
	if _, err := c.AddFunc(w.cfg.Worker.DeadlineCheckCronSpec, func() { w.runDeadlineCheck(w.runCtx) }); err != nil {
		w.log.Warn("reminders.worker: invalid deadline cron spec, using default", zap.Error(err))
		_, _ = c.AddFunc("@hourly", func() { w.runDeadlineCheck(w.runCtx) })
	}

	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	return time.Duration(w.cfg.Worker.LeaderLockTTLInSeconds) * time.Second
}

func (w *Worker) acquireLeader(ctx context.Context, key string) (string, bool) {
	acquired, lockValue, err := w.locker.TryLock(ctx, key, w.lockTTL())
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return "", false
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock held elsewhere, skipping run",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return "", false
	}
	return lockValue, true
}

// runMorningDigest pushes one notification summarizing today's schedules.
// An empty day sends nothing.
func (w *Worker) runMorningDigest(ctx context.Context) {
	lockValue, ok := w.acquireLeader(ctx, digestLockKey)
	if !ok {
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, digestLockKey, lockValue); err != nil {
			w.log.Warn("reminders.worker: unlock failed", zap.Error(err))
		}
	}()

	now := w.now().In(utils.TimezoneWIB)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.TimezoneWIB)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	schedules, err := w.scheduleRepo.FindByDateRange(ctx, dayStart, dayEnd)
	if err != nil {
		w.log.Error("reminders.worker: digest query failed", zap.Error(err))
		return
	}
	if len(schedules) == 0 {
		w.log.Info("reminders.worker: no schedules today, digest skipped")
		return
	}

	entries := make([]string, 0, len(schedules))
	for _, schedule := range schedules {
		entries = append(entries, fmt.Sprintf("%s (%s)", schedule.Content, utils.FormatTimeHM(schedule.Date)))
	}
	body := fmt.Sprintf(constvars.ChatMorningDigestFormat, strings.Join(entries, ", "))

	if err := w.publisher.Publish(ctx, constvars.ChatMorningDigestTitle, body); err != nil {
		w.log.Error("reminders.worker: digest publish failed", zap.Error(err))
		return
	}
	w.log.Info("reminders.worker: morning digest sent",
		zap.Int(constvars.LoggingIntervalCountKey, len(schedules)),
	)
}

// runDeadlineCheck notifies once per task whose deadline falls inside the
// configured look-ahead window. The notified flag makes re-runs idempotent.
func (w *Worker) runDeadlineCheck(ctx context.Context) {
	lockValue, ok := w.acquireLeader(ctx, deadlineLockKey)
	if !ok {
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, deadlineLockKey, lockValue); err != nil {
			w.log.Warn("reminders.worker: unlock failed", zap.Error(err))
		}
	}()

	now := w.now().In(utils.TimezoneWIB)
	windowEnd := now.Add(time.Duration(w.cfg.Worker.DeadlineWindowInHours) * time.Hour)

	tasks, err := w.taskRepo.FindDueBetween(ctx, now, windowEnd)
	if err != nil {
		w.log.Error("reminders.worker: deadline query failed", zap.Error(err))
		return
	}

	for _, task := range tasks {
		if task.Notified {
			continue
		}
		body := fmt.Sprintf(constvars.ChatDeadlineReminderFormat, task.Content)
		if err := w.publisher.Publish(ctx, constvars.ChatDeadlineReminderTitle, body); err != nil {
			w.log.Error("reminders.worker: deadline publish failed",
				zap.String(constvars.LoggingActivityKey, task.Content),
				zap.Error(err),
			)
			continue
		}
		if err := w.taskRepo.MarkNotified(ctx, task.ID.Hex()); err != nil {
			w.log.Error("reminders.worker: mark notified failed",
				zap.String(constvars.LoggingActivityKey, task.Content),
				zap.Error(err),
			)
		}
	}
}
