package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	AppProductionEnvironment  = "production"
	AppDevelopmentEnvironment = "development"

	AppDefaultRequestTimeoutInSeconds = 10
)

const (
	MongoCollectionAccounts     = "accounts"
	MongoCollectionInquiries    = "inquiries"
	MongoCollectionHistories    = "histories"
	MongoCollectionReservations = "reservations"
)

const (
	UnknownUserName         = "Unknown User"
	UnknownPractitionerName = "Unknown Practitioner"
)

const (
	RedisKeySigninLimiterGroup = "SIGNIN"
	RedisKeyReminderLeaderLock = "reminder:leader"
	ReminderDeliverySMTP       = "smtp"
	ReminderDeliveryQueue      = "queue"
)
