package contracts

import (
	"context"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/responses"
)

// SchedulerUsecase is the caller-facing contract of the automatic scheduling
// engine. Ok=false in the result is a normal "no capacity" outcome; errors
// are reserved for infrastructure failure.
type SchedulerUsecase interface {
	AutoSchedule(ctx context.Context, request *requests.AutoSchedule) (*responses.AutoScheduleResult, error)
}

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (string, error)
	QuerySchedules(ctx context.Context, request *requests.ScheduleQuery) (*responses.ScheduleQueryResult, error)
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, request *requests.CreateTask) (string, error)
}
