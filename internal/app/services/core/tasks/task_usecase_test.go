package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Wednesday 2025-09-10, 08:30 WIB.
var testNow = time.Date(2025, time.September, 10, 8, 30, 0, 0, utils.TimezoneWIB)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *models.Task) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}

func (m *MockTaskRepository) FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) MarkNotified(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type MockTaskClient struct {
	mock.Mock
}

func (m *MockTaskClient) ListTasks(ctx context.Context) ([]contracts.TaskItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.TaskItem), args.Error(1)
}

func (m *MockTaskClient) InsertTask(ctx context.Context, task *contracts.TaskItem) (*contracts.TaskItem, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.TaskItem), args.Error(1)
}

type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]contracts.CalendarEvent, error) {
	args := m.Called(ctx, timeMin, timeMax)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.CalendarEvent), args.Error(1)
}

func (m *MockCalendarClient) InsertEvent(ctx context.Context, event *contracts.CalendarEvent) (*contracts.CalendarEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.CalendarEvent), args.Error(1)
}

func newTestUsecase(repo *MockTaskRepository, client *MockTaskClient, cal *MockCalendarClient) *taskUsecase {
	uc := &taskUsecase{
		TaskRepo: repo,
		Log:      zap.NewNop(),
		now:      func() time.Time { return testNow },
	}
	if client != nil {
		uc.TaskClient = client
	}
	if cal != nil {
		uc.Calendar = cal
	}
	return uc
}

func TestCreateTask_TimedDeadline(t *testing.T) {
	client := new(MockTaskClient)
	client.On("InsertTask", mock.Anything, mock.MatchedBy(func(item *contracts.TaskItem) bool {
		return item.Title == "Kumpul laporan" && item.Due == "2025-09-11T15:00:00+07:00"
	})).Return(&contracts.TaskItem{ID: "task1"}, nil)

	cal := new(MockCalendarClient)
	cal.On("InsertEvent", mock.Anything, mock.MatchedBy(func(e *contracts.CalendarEvent) bool {
		return e.Summary == "Deadline: Kumpul laporan" &&
			e.Start.DateTime == "2025-09-11T15:00:00+07:00" &&
			e.End.DateTime == "2025-09-11T15:30:00+07:00"
	})).Return(&contracts.CalendarEvent{ID: "evt20"}, nil)

	repo := new(MockTaskRepository)
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
		return task.Content == "Kumpul laporan" &&
			task.Date.Equal(time.Date(2025, time.September, 11, 15, 0, 0, 0, utils.TimezoneWIB)) &&
			!task.Notified
	})).Return("task1", nil)

	uc := newTestUsecase(repo, client, cal)
	message, err := uc.CreateTask(context.Background(), &requests.CreateTask{
		Event:     "Kumpul laporan",
		Day:       "besok",
		TimeStart: "15:00",
	})

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(constvars.ChatTaskCreatedMessageFormat, "Kumpul laporan"), message)
	client.AssertExpectations(t)
	cal.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateTask_DateOnlyDeadlineDueEndOfDay(t *testing.T) {
	client := new(MockTaskClient)
	client.On("InsertTask", mock.Anything, mock.MatchedBy(func(item *contracts.TaskItem) bool {
		return item.Due == "2025-09-12T23:59:00+07:00"
	})).Return(&contracts.TaskItem{ID: "task2"}, nil)

	cal := new(MockCalendarClient)
	cal.On("InsertEvent", mock.Anything, mock.MatchedBy(func(e *contracts.CalendarEvent) bool {
		return e.Start.Date == "2025-09-12" && e.End.Date == "2025-09-13"
	})).Return(&contracts.CalendarEvent{ID: "evt21"}, nil)

	repo := new(MockTaskRepository)
	repo.On("CreateTask", mock.Anything, mock.Anything).Return("task2", nil)

	uc := newTestUsecase(repo, client, cal)
	_, err := uc.CreateTask(context.Background(), &requests.CreateTask{
		Event: "Beres-beres kamar",
		Day:   "lusa",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
	cal.AssertExpectations(t)
}

func TestCreateTask_ExternalFailuresKeepLocalRecord(t *testing.T) {
	client := new(MockTaskClient)
	client.On("InsertTask", mock.Anything, mock.Anything).
		Return(nil, errors.New("tasks api down"))

	cal := new(MockCalendarClient)
	cal.On("InsertEvent", mock.Anything, mock.Anything).
		Return(nil, errors.New("calendar down"))

	repo := new(MockTaskRepository)
	repo.On("CreateTask", mock.Anything, mock.Anything).Return("task3", nil)

	uc := newTestUsecase(repo, client, cal)
	_, err := uc.CreateTask(context.Background(), &requests.CreateTask{
		Event:     "Bayar listrik",
		Day:       "besok",
		TimeStart: "09:00",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateTask_AbsentIntegrationsTolerated(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("CreateTask", mock.Anything, mock.Anything).Return("task4", nil)

	uc := newTestUsecase(repo, nil, nil)
	_, err := uc.CreateTask(context.Background(), &requests.CreateTask{
		Event: "Nyicil skripsi",
		Day:   "besok",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateTask_MalformedTimeRejected(t *testing.T) {
	repo := new(MockTaskRepository)

	uc := newTestUsecase(repo, nil, nil)
	_, err := uc.CreateTask(context.Background(), &requests.CreateTask{
		Event:     "Tugas",
		Day:       "besok",
		TimeStart: "aa:bb",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}
