package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.September, 10, 6, 0, 0, 0, utils.TimezoneWIB)

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error) {
	args := m.Called(ctx, schedule)
	return args.String(0), args.Error(1)
}

func (m *MockScheduleRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Schedule), args.Error(1)
}

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

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, title, body string) error {
	args := m.Called(ctx, title, body)
	return args.Error(0)
}

func newTestWorker(locker *MockLockerService, scheduleRepo *MockScheduleRepository, taskRepo *MockTaskRepository, publisher *MockNotificationPublisher) *Worker {
	cfg := &config.InternalConfig{
		Worker: config.Worker{
			MorningDigestCronSpec:  "0 6 * * *",
			DeadlineCheckCronSpec:  "@hourly",
			LeaderLockTTLInSeconds: 120,
			DeadlineWindowInHours:  12,
		},
	}
	w := NewWorker(zap.NewNop(), cfg, locker, scheduleRepo, taskRepo, publisher)
	w.now = func() time.Time { return testNow }
	return w
}

func grantLock(locker *MockLockerService) {
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).
		Return(true, "lock-token", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "lock-token").
		Return(nil)
}

func TestMorningDigest_PublishesSummary(t *testing.T) {
	locker := new(MockLockerService)
	grantLock(locker)

	scheduleRepo := new(MockScheduleRepository)
	scheduleRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Schedule{
			{Content: "Kuliah", Date: time.Date(2025, time.September, 10, 9, 0, 0, 0, utils.TimezoneWIB)},
			{Content: "Rapat", Date: time.Date(2025, time.September, 10, 14, 0, 0, 0, utils.TimezoneWIB)},
		}, nil)

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, constvars.ChatMorningDigestTitle,
		"Selamat pagi! Hari ini ada: Kuliah (09:00), Rapat (14:00)").
		Return(nil)

	w := newTestWorker(locker, scheduleRepo, new(MockTaskRepository), publisher)
	w.runMorningDigest(context.Background())

	publisher.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestMorningDigest_EmptyDaySendsNothing(t *testing.T) {
	locker := new(MockLockerService)
	grantLock(locker)

	scheduleRepo := new(MockScheduleRepository)
	scheduleRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Schedule{}, nil)

	publisher := new(MockNotificationPublisher)

	w := newTestWorker(locker, scheduleRepo, new(MockTaskRepository), publisher)
	w.runMorningDigest(context.Background())

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestMorningDigest_SkippedWithoutLeaderLock(t *testing.T) {
	locker := new(MockLockerService)
	locker.On("TryLock", mock.Anything, digestLockKey, mock.Anything).
		Return(false, "", nil)

	scheduleRepo := new(MockScheduleRepository)
	publisher := new(MockNotificationPublisher)

	w := newTestWorker(locker, scheduleRepo, new(MockTaskRepository), publisher)
	w.runMorningDigest(context.Background())

	scheduleRepo.AssertNotCalled(t, "FindByDateRange", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeadlineCheck_NotifiesAndMarks(t *testing.T) {
	locker := new(MockLockerService)
	grantLock(locker)

	taskID := primitive.NewObjectID()
	notifiedID := primitive.NewObjectID()
	taskRepo := new(MockTaskRepository)
	taskRepo.On("FindDueBetween", mock.Anything, testNow, testNow.Add(12*time.Hour)).
		Return([]models.Task{
			{ID: taskID, Content: "Kumpul laporan", Date: testNow.Add(3 * time.Hour)},
			{ID: notifiedID, Content: "Sudah diingatkan", Date: testNow.Add(5 * time.Hour), Notified: true},
		}, nil)
	taskRepo.On("MarkNotified", mock.Anything, taskID.Hex()).Return(nil)

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, constvars.ChatDeadlineReminderTitle,
		"Tugas \"**Kumpul laporan**\" akan jatuh tempo dalam waktu 12 jam ke depan!").
		Return(nil)

	w := newTestWorker(locker, new(MockScheduleRepository), taskRepo, publisher)
	w.runDeadlineCheck(context.Background())

	taskRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestDeadlineCheck_PublishFailureLeavesTaskUnmarked(t *testing.T) {
	locker := new(MockLockerService)
	grantLock(locker)

	taskID := primitive.NewObjectID()
	taskRepo := new(MockTaskRepository)
	taskRepo.On("FindDueBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Task{
			{ID: taskID, Content: "Bayar UKT", Date: testNow.Add(2 * time.Hour)},
		}, nil)

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("queue unavailable"))

	w := newTestWorker(locker, new(MockScheduleRepository), taskRepo, publisher)
	w.runDeadlineCheck(context.Background())

	taskRepo.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything)
}

func TestWorker_StartStop(t *testing.T) {
	locker := new(MockLockerService)
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).
		Return(false, "", nil).Maybe()

	w := newTestWorker(locker, new(MockScheduleRepository), new(MockTaskRepository), new(MockNotificationPublisher))

	w.Start(context.Background())
	require.NotNil(t, w.cron)
	w.Stop()

	assert.NotPanics(t, w.Stop)
}
