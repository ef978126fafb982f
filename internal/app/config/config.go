package config

import (
	"github.com/joho/godotenv"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "assistant"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		Google: Google{
			CalendarBaseUrl:         utils.GetEnvString("GOOGLE_CALENDAR_BASE_URL", "https://www.googleapis.com/calendar/v3"),
			CalendarID:              utils.GetEnvString("GOOGLE_CALENDAR_ID", "primary"),
			TasksBaseUrl:            utils.GetEnvString("GOOGLE_TASKS_BASE_URL", "https://tasks.googleapis.com/tasks/v1"),
			TaskListID:              utils.GetEnvString("GOOGLE_TASK_LIST_ID", "@default"),
			AccessToken:             utils.GetEnvString("GOOGLE_ACCESS_TOKEN", ""),
			CalendarRPS:             utils.GetEnvInt("GOOGLE_CALENDAR_RPS", 5),
			RequestTimeoutInSeconds: utils.GetEnvInt("GOOGLE_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Scheduler: Scheduler{
			WorkDayStartHour:         utils.GetEnvInt("SCHEDULER_WORK_DAY_START_HOUR", 9),
			WorkDayEndHour:           utils.GetEnvInt("SCHEDULER_WORK_DAY_END_HOUR", 22),
			HorizonDays:              utils.GetEnvInt("SCHEDULER_HORIZON_DAYS", 7),
			CandidateStepInMinutes:   utils.GetEnvInt("SCHEDULER_CANDIDATE_STEP_IN_MINUTES", 30),
			SourceTimeoutInSeconds:   utils.GetEnvInt("SCHEDULER_SOURCE_TIMEOUT_IN_SECONDS", 10),
			DefaultDurationInMinutes: utils.GetEnvInt("SCHEDULER_DEFAULT_DURATION_IN_MINUTES", 120),
		},
		Worker: Worker{
			MorningDigestCronSpec:  utils.GetEnvString("WORKER_MORNING_DIGEST_CRON_SPEC", "0 6 * * *"),
			DeadlineCheckCronSpec:  utils.GetEnvString("WORKER_DEADLINE_CHECK_CRON_SPEC", "@hourly"),
			LeaderLockTTLInSeconds: utils.GetEnvInt("WORKER_LEADER_LOCK_TTL_IN_SECONDS", 120),
			DeadlineWindowInHours:  utils.GetEnvInt("WORKER_DEADLINE_WINDOW_IN_HOURS", 12),
		},
	}
}
