package schedule

import "fmt"

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var dayShortNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayName returns the full weekday name, "unknown" outside 0..6.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "unknown"
	}
	return dayNames[dayOfWeek]
}

// SummaryEntry is one configured day's read-only rendering.
type SummaryEntry struct {
	DayOfWeek  int    `json:"dayOfWeek"`
	ShortLabel string `json:"shortLabel"`
	Window     string `json:"window"`
}

// CountConfiguredDays counts the entries with both times set.
func CountConfiguredDays(c Collection) int {
	count := 0
	for _, entry := range c {
		if entry.IsComplete() {
			count++
		}
	}
	return count
}

// Summary derives the compact per-day lines shown above the editor, in
// weekday order starting Sunday. It is a read model only: always re-derived
// from the collection, never a source of truth.
func Summary(c Collection) []SummaryEntry {
	out := make([]SummaryEntry, 0, len(c))
	for _, entry := range c {
		if !entry.IsComplete() {
			continue
		}
		out = append(out, SummaryEntry{
			DayOfWeek:  entry.DayOfWeek,
			ShortLabel: dayShortNames[entry.DayOfWeek],
			Window:     fmt.Sprintf("%s-%s", entry.StartTime, entry.EndTime),
		})
	}
	return out
}
