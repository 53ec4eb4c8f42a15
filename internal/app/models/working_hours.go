package models

// DailyWorkingHour is one weekday's configured working window. Times are
// wall-clock "HH:mm" strings; an empty string means "not set". DayOfWeek
// follows the mobile client's convention: 0 = Sunday through 6 = Saturday.
type DailyWorkingHour struct {
	DayOfWeek int    `json:"dayOfWeek" bson:"dayOfWeek"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// IsComplete reports whether both times of the window are filled in.
func (d DailyWorkingHour) IsComplete() bool {
	return d.StartTime != "" && d.EndTime != ""
}

// CompanySchedule is the persisted weekly schedule document for a company:
// the service interval (minutes between bookable appointments) plus at most
// one working window per weekday.
type CompanySchedule struct {
	ServiceInterval int                `json:"serviceInterval" bson:"serviceInterval"`
	WorkingHours    []DailyWorkingHour `json:"workingHours" bson:"workingHours"`
}
