package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Schedule messages
	EditorOpenedSuccess     = "schedule editor opened"
	EditorDiscardedSuccess  = "schedule editor discarded"
	ScheduleUpdatedSuccess  = "working hours updated"
	ScheduleSavedSuccess    = "working hours saved successfully"
	ScheduleFetchedSuccess  = "working hours fetched successfully"
	ConfirmationNeeded      = "confirmation required"
	ConfirmationDismissed   = "operation dismissed"

	// Settings messages
	SettingsFetchedSuccess = "settings fetched successfully"
	SettingsSavedSuccess   = "settings saved successfully"
	FormSchemaSuccess      = "form schema fetched successfully"
)
