package models

// Company is the settings document the settings tabs write into. The schedule
// is edited through the schedule engine only and replaced wholesale on save.
type Company struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Phone       string          `json:"phone" bson:"phone"`
	Description string          `json:"description" bson:"description"`
	LogoURL     string          `json:"logoUrl" bson:"logoUrl"`
	Schedule    CompanySchedule `json:"schedule" bson:"schedule"`
	TimeModel   `bson:",inline"`
}
