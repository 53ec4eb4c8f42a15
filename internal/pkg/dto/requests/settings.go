package requests

import "agenda-service/internal/app/models"

// WorkingHoursTab is the "working-hours" pane's contribution to a combined
// settings save. The hours still pass the schedule engine's save gate.
type WorkingHoursTab struct {
	ServiceInterval int                       `json:"serviceInterval" validate:"gte=5,lte=480"`
	WorkingHours    []models.DailyWorkingHour `json:"workingHours"`
}

// CompanyProfileTab is the "company-profile" pane's contribution. Logo is an
// optional base64 data URL uploaded to object storage on save.
type CompanyProfileTab struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Phone       string `json:"phone" validate:"max=20"`
	Description string `json:"description" validate:"max=500"`
	Logo        string `json:"logo"`
}

// SaveSettings is the tabs aggregator handed to the settings usecase: each
// pane writes its key, the whole object is read once at save time. Absent
// tabs are untouched.
type SaveSettings struct {
	WorkingHours   *WorkingHoursTab   `json:"working-hours"`
	CompanyProfile *CompanyProfileTab `json:"company-profile"`
}
