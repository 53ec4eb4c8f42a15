package settings

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/responses"
)

// Field kinds understood by the mobile client's form renderer.
const (
	FieldKindHeader         = "header"
	FieldKindText           = "text"
	FieldKindNumber         = "number"
	FieldKindWeeklySchedule = "weekly-schedule"
)

// formSchemas describes each settings tab as data, so the client renders
// whatever the backend declares without shipping a new screen per tab.
var formSchemas = map[string]responses.FormSchema{
	constvars.SettingsTabWorkingHours: {
		TabKey: constvars.SettingsTabWorkingHours,
		Title:  "Working Hours",
		Fields: []responses.FormField{
			{
				Kind:  FieldKindHeader,
				Name:  "availabilityHeader",
				Label: "Business availability",
			},
			{
				Kind:  FieldKindWeeklySchedule,
				Name:  "workingHours",
				Label: "Weekly working hours",
				WeeklySchedule: &responses.WeeklyScheduleField{
					ModalTitle:    "Working Hours",
					ModalSubtitle: "Set the hours your business accepts appointments",
					Scope:         constvars.ScheduleScopeCompany,
				},
			},
			{
				Kind:        FieldKindNumber,
				Name:        "serviceInterval",
				Label:       "Appointment interval (minutes)",
				Placeholder: "30",
			},
		},
	},
	constvars.SettingsTabCompanyProfile: {
		TabKey: constvars.SettingsTabCompanyProfile,
		Title:  "Company Profile",
		Fields: []responses.FormField{
			{
				Kind:  FieldKindHeader,
				Name:  "profileHeader",
				Label: "About your business",
			},
			{
				Kind:        FieldKindText,
				Name:        "name",
				Label:       "Business name",
				Placeholder: "e.g. Studio Mawar",
			},
			{
				Kind:        FieldKindText,
				Name:        "phone",
				Label:       "Phone number",
				Placeholder: "+62",
			},
			{
				Kind:        FieldKindText,
				Name:        "description",
				Label:       "Description",
				Placeholder: "Tell customers what you do",
			},
		},
	},
}

// tabOrder keeps the schema listing stable for the client's tab bar.
var tabOrder = []string{
	constvars.SettingsTabWorkingHours,
	constvars.SettingsTabCompanyProfile,
}
