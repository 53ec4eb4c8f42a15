package schedule

import "agenda-service/internal/app/models"

// Template is a named, predefined set of day/time assignments applied in
// bulk. Weekdays the template does not target keep their prior state.
type Template struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Days  []int  `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Templates mirrors the quick-action presets offered in the editor.
var Templates = []Template{
	{Key: "mon-fri-8-17", Name: "Mon-Fri 08:00-17:00", Days: []int{1, 2, 3, 4, 5}, Start: "08:00", End: "17:00"},
	{Key: "mon-fri-9-18", Name: "Mon-Fri 09:00-18:00", Days: []int{1, 2, 3, 4, 5}, Start: "09:00", End: "18:00"},
	{Key: "mon-sat-8-17", Name: "Mon-Sat 08:00-17:00", Days: []int{1, 2, 3, 4, 5, 6}, Start: "08:00", End: "17:00"},
	{Key: "every-day-8-17", Name: "Every day 08:00-17:00", Days: []int{0, 1, 2, 3, 4, 5, 6}, Start: "08:00", End: "17:00"},
}

// TemplateByKey returns the registered template for a key.
func TemplateByKey(key string) (Template, bool) {
	for _, t := range Templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// ApplyTemplate overwrites the targeted weekdays with the template's window
// and leaves every other day untouched. Applying the same template twice is a
// no-op the second time.
func ApplyTemplate(c Collection, t Template) Collection {
	entries := c.Entries()
	for _, day := range t.Days {
		entries = append(entries, models.DailyWorkingHour{
			DayOfWeek: day,
			StartTime: t.Start,
			EndTime:   t.End,
		})
	}
	// last write wins, so template days shadow prior entries
	return ReplaceAll(entries)
}
