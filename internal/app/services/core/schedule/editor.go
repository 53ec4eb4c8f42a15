package schedule

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"time"
)

// EditorDraft is the server-side working copy behind one editing session.
// Every mutation rewrites the draft in Redis under its editor ID; nothing
// touches the persisted schedule until the draft passes the save gate.
type EditorDraft struct {
	EditorID     string                    `json:"editorId"`
	CompanyID    string                    `json:"companyId"`
	Scope        string                    `json:"scope"`
	WorkingHours []models.DailyWorkingHour `json:"workingHours"`
	Parent       []models.DailyWorkingHour `json:"parent,omitempty"`
	CreatedAt    time.Time                 `json:"createdAt"`
}

func (d *EditorDraft) Collection() Collection {
	return Collection(d.WorkingHours)
}

// ParentCollection returns the constraining schedule snapshotted when the
// editor was opened. Company-scope drafts answer the top of the hierarchy, so
// they are never constrained.
func (d *EditorDraft) ParentCollection() Collection {
	if d.Scope == constvars.ScheduleScopeCompany || d.Parent == nil {
		return nil
	}
	return Collection(d.Parent)
}

const (
	operationCopyToAllDays = "copy_to_all_days"
	operationClearDay      = "clear_day"
)

// pendingOperation is a confirmation-gated edit parked in Redis until the
// client answers the prompt. Declining, or letting the token expire, leaves
// the draft untouched.
type pendingOperation struct {
	Token     string `json:"token"`
	EditorID  string `json:"editorId"`
	CompanyID string `json:"companyId"`
	Kind      string `json:"kind"`
	DayOfWeek int    `json:"dayOfWeek"`
}
