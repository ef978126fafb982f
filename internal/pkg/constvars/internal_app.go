package constvars

const (
	ResponseUnknown = "unknown"
)

// Mongo collection names.
const (
	MongoCollectionSchedules = "schedules"
	MongoCollectionTasks     = "tasks"
)

// Context keys.
type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

// Notification queue names.
const (
	NotificationQueueName           = "assistant_push_notification_queue"
	NotificationDeadLetterQueueName = "assistant_push_notification_dlq"
)
