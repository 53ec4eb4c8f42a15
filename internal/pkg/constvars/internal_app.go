package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AGND_SVC_"
)

const (
	MongoCollectionUsers     = "users"
	MongoCollectionCompanies = "companies"
)

// Redis key formats. Editor drafts and pending confirmations are short lived
// and expire on their own when the operator walks away from the editor.
const (
	RedisKeySessionFormat          = "session:%s"
	RedisKeyScheduleDraftFormat    = "schedule_draft:%s"
	RedisKeyPendingConfirmFormat   = "schedule_confirm:%s"
	RedisKeyCompanyScheduleFormat  = "company_schedule:%s"
	ScheduleDraftTTLInMinute       = 30
	PendingConfirmationTTLInMinute = 5
	CompanyScheduleCacheTTLInHour  = 12
)

const (
	ScheduleScopeCompany = "company"
)

const (
	SettingsTabWorkingHours   = "working-hours"
	SettingsTabCompanyProfile = "company-profile"
)

const (
	RabbitMQScheduleUpdatedQueue = "schedule.updated"
)
