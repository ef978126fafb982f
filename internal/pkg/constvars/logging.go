package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingSourceKey        = "source"
	LoggingIntervalCountKey = "interval_count"
	LoggingCandidateKey     = "candidate_count"
	LoggingActivityKey      = "activity"
	LoggingDurationMinKey   = "duration_minutes"
	LoggingSlotStartKey     = "slot_start"
	LoggingSlotEndKey       = "slot_end"
	LoggingScoreKey         = "score"
	LoggingEventIDKey       = "calendar_event_id"
	LoggingScheduleIDKey    = "schedule_id"

	LoggingRedisKey                 = "redis_key"
	LoggingLockValueKey             = "lock_value"
	LoggingLockExpirationTimeKey    = "lock_expiration_time"
	LoggingLockStoredValueKey       = "lock_stored_value"
	LoggingLockExpectedValueKey     = "lock_expected_value"
	LoggingNotificationTitleKey     = "notification_title"
	LoggingNotificationQueueNameKey = "queue_name"
)
