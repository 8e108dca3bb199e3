package constvars

// client-facing
const (
	ErrClientCannotProcessRequest          = "cannot process the request, please try again later"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in or your session has expired"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientEmailAlreadyExists            = "email already in use"
	ErrClientUserNotFound                  = "user not found"
	ErrClientPractitionerNotFound          = "practitioner not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientInquiryNotFound               = "inquiry not found"
	ErrClientHistoryNotFound               = "history not found"
	ErrClientOnlyPatientsAllowed           = "only patients can perform this action"
	ErrClientOnlyPractitionersAllowed      = "only practitioners can perform this action"
	ErrClientSelfRating                    = "you cannot rate yourself"
	ErrClientNotOwner                      = "you can only modify your own resources"
	ErrClientMissingRequiredFields         = "missing required fields"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientInvalidFileFormat             = "invalid file format"
	ErrClientInvalidRatingValue            = "rating value must be between 0 and 5"
	ErrClientFileTooLarge                  = "file is too large"
)

// developer-facing
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevRoleFieldsMissing          = "role specific fields missing for role %s"
	ErrDevInvalidRoleType            = "invalid role type %s"
	ErrDevRoleTypeDoesntMatch        = "role type %s not allowed for this action"
	ErrDevCallerIDMismatch           = "caller %s acting on behalf of %s"
	ErrDevSelfRating                 = "account %s attempted to rate itself"
	ErrDevCannotParseJSON            = "failed to parse JSON"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process"
	ErrDevMissingSessionData         = "session data missing in context"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials for %s"
	ErrDevEmailAlreadyExists         = "email %s already exists"
	ErrDevAccountNotExists           = "account %s not exists"
	ErrDevPractitionerNotExists      = "practitioner %s not exists"
	ErrDevPatientNotExists           = "patient %s not exists"
	ErrDevInquiryNotExists           = "inquiry %s not exists"
	ErrDevHistoryNotExists           = "history %s not exists"
	ErrDevNotResourceOwner           = "account %s does not own %s"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevInvalidAPIKey              = "invalid API key"
	ErrDevAPIKeyRequired             = "API key required"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBTransactionFailed        = "transaction failed"
	ErrDevRedisGetNoData             = "no data found in redis for key %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisIncrementValue        = "failed to increment value in redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevSMTPSendEmail              = "failed to send email via %s"
	ErrDevInvalidRatingValue         = "rating value %v outside of the allowed range"
	ErrDevFileTooLarge               = "file size %d exceeds the limit of %d bytes"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of: %s",
	"password": "must be at least 8 characters",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
