package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingAccountIDKey          = "account_id"
	LoggingPractitionerIDKey     = "practitioner_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingInquiryIDKey          = "inquiry_id"
	LoggingHistoryIDKey          = "history_id"
	LoggingRoleKey               = "role"
	LoggingEmailKey              = "email"
	LoggingCountKey              = "count"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingCronSpecKey           = "cron_spec"
)
