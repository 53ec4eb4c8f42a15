package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"base64":   "must be a valid base64 string",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientInvalidImageFormat            = "logo must be a valid PNG or JPEG image"

	ErrClientScheduleNotFound          = "no working hours configured yet"
	ErrClientEditorNotFound            = "this editing session has expired, please reopen the editor"
	ErrClientConfirmationNotFound      = "this confirmation has expired, please try the action again"
	ErrClientScheduleInvalid           = "some days have invalid working hours"
	ErrClientDayNotConfigured          = "this day has no working hours to copy"
	ErrClientDayIncomplete             = "please configure the full working hours for this day first"
	ErrClientUnknownTemplate           = "unknown schedule template"
	ErrClientInvalidWeekday            = "day of week must be between 0 (Sunday) and 6 (Saturday)"
	ErrClientScheduleOutsideParent     = "these working hours fall outside the company schedule"
	ErrClientSettingsTabUnknown        = "unknown settings tab"
	ErrClientSettingsNothingToSave     = "no settings changes to save"
	ErrClientCompanyProfileNotFound    = "company profile not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevImageValidationFailed  = "image validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevURLParamValidation     = "parameter %s validation failed"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"

	// Auth
	ErrDevAuthSigningMethod   = "unexpected signing method"
	ErrDevAuthTokenMissing    = "token missing"
	ErrDevAuthTokenInvalid    = "invalid or expired token"
	ErrDevAuthInvalidSession  = "invalid session"
	ErrDevAuthGenerateToken   = "failed to generate token"
	ErrDevInvalidCredentials  = "invalid credentials"
	ErrDevFailedToHashPassword = "failed to hash password"

	// Mongo DB
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Redis
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Schedule engine
	ErrDevScheduleDraftNotFound    = "no schedule draft found for editor id"
	ErrDevScheduleDraftNotOwned    = "editor draft belongs to a different company"
	ErrDevScheduleConfirmNotFound  = "no pending confirmation found for token"
	ErrDevScheduleSaveGateRejected = "schedule rejected by save gate"
	ErrDevScheduleUnknownTemplate  = "no template registered under the given name"
	ErrDevScheduleInvalidWeekday   = "day of week out of range"
	ErrDevScheduleSourceDayInvalid = "source day incomplete or invalid, cannot copy"
	ErrDevCompanyNotFound          = "company document not found"
	ErrDevSettingsUnknownTab       = "no settings tab registered under the given key"
	ErrDevSettingsNothingToSave    = "save payload carries no tab"
)
