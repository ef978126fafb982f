package contracts

import (
	"context"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
)

type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Schedule, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) (string, error)
	FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error)
	MarkNotified(ctx context.Context, taskID string) error
}
