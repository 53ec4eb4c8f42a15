package responses

import "agenda-service/internal/app/models"

// DayValidationError is one weekday's validation failure as rendered to the
// client, so the UI can highlight exactly that row.
type DayValidationError struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

type ScheduleSummaryEntry struct {
	DayOfWeek  int    `json:"dayOfWeek"`
	ShortLabel string `json:"shortLabel"`
	Window     string `json:"window"`
}

type SkippedDay struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Reason    string `json:"reason"`
}

type BulkOutcome struct {
	AppliedDays []int        `json:"appliedDays"`
	Skipped     []SkippedDay `json:"skipped,omitempty"`
}

// EditorState is the full editor read model returned after every mutation:
// the draft collection plus the re-derived validation map and summary.
type EditorState struct {
	EditorID       string                    `json:"editorId"`
	WorkingHours   []models.DailyWorkingHour `json:"workingHours"`
	Errors         []DayValidationError      `json:"errors"`
	ConfiguredDays int                       `json:"configuredDays"`
	Summary        []ScheduleSummaryEntry    `json:"summary"`
	Outcome        *BulkOutcome              `json:"outcome,omitempty"`
}

// PendingConfirmation suspends a confirmation-gated operation until the
// client answers the prompt.
type PendingConfirmation struct {
	Token  string `json:"token"`
	Prompt string `json:"prompt"`
}

type ConfirmationResult struct {
	Applied bool         `json:"applied"`
	Editor  *EditorState `json:"editor,omitempty"`
}

type CompanySchedule struct {
	ServiceInterval int                       `json:"serviceInterval"`
	WorkingHours    []models.DailyWorkingHour `json:"workingHours"`
	ConfiguredDays  int                       `json:"configuredDays"`
	Summary         []ScheduleSummaryEntry    `json:"summary"`
}
