package constvars

// Client-facing error messages.
const (
	ErrClientCannotProcessRequest          = "cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientInvalidTimeFormat             = "time must be in HH:MM 24-hour format"
	ErrClientInvalidPeriod                 = "period must be one of daily, today, tomorrow, day_after_tomorrow, this_week, next_week, monthly"
	ErrClientUnresolvedDay                 = "day expression could not be resolved"
)

// Developer error messages.
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "failed to marshal JSON"
	ErrDevCannotParseTime        = "failed to parse time string '%s'"
	ErrDevCannotParseDayExpr     = "failed to resolve day expression '%s'"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeResponse         = "failed to decode %s response body"
	ErrDevUnexpectedStatusCode   = "unexpected status code %d from %s"
	ErrDevMongoDBInsertDocument  = "failed to insert document to MongoDB"
	ErrDevMongoDBFindDocument    = "failed to find document in MongoDB"
	ErrDevMongoDBUpdateDocument  = "failed to update document in MongoDB"
	ErrDevMongoDBCursorIteration = "failed while iterating MongoDB cursor"
	ErrDevRedisSetNX             = "failed to set NX key in redis"
	ErrDevRedisGet               = "failed to get key from redis"
	ErrDevRedisDelete            = "failed to delete key from redis"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevQueuePublish           = "failed to publish message to notification queue"
	ErrDevQueueDeclare           = "failed to declare notification queue"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevMissingRequestID       = "request id not found in request context"
)

// Validation messages mapper.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}
