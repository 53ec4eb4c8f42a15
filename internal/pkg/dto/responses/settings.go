package responses

// FormField is one field of a dynamically rendered settings form. Kind
// selects the renderer on the client; the weekly-schedule variant carries
// the modal configuration the mobile client needs.
type FormField struct {
	Kind           string               `json:"kind"`
	Name           string               `json:"name"`
	Label          string               `json:"label"`
	Placeholder    string               `json:"placeholder,omitempty"`
	WeeklySchedule *WeeklyScheduleField `json:"weeklySchedule,omitempty"`
}

type WeeklyScheduleField struct {
	ModalTitle    string `json:"modalTitle"`
	ModalSubtitle string `json:"modalSubtitle,omitempty"`
	Scope         string `json:"scope"`
}

type FormSchema struct {
	TabKey string      `json:"tabKey"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

type Settings struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Description string           `json:"description"`
	LogoURL     string           `json:"logoUrl"`
	Schedule    *CompanySchedule `json:"schedule"`
}

type SaveSettingsResult struct {
	SavedTabs []string `json:"savedTabs"`
	LogoURL   string   `json:"logoUrl,omitempty"`
}
