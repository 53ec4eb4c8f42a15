package schedule

import (
	"agenda-service/internal/app/models"
	"sort"
)

// Collection is one week's working hours: at most one entry per weekday,
// always sorted by DayOfWeek ascending. Operations never mutate their
// receiver; every edit goes through them so the invariants hold at every
// observable state.
type Collection []models.DailyWorkingHour

// EntryPatch carries the fields of an upsert. A nil field leaves the current
// value untouched; pointing at an empty string clears it.
type EntryPatch struct {
	StartTime *string
	EndTime   *string
}

// EntryFor looks up the entry for a weekday. The second return is false when
// the day is disabled (no record).
func (c Collection) EntryFor(dayOfWeek int) (models.DailyWorkingHour, bool) {
	for _, entry := range c {
		if entry.DayOfWeek == dayOfWeek {
			return entry, true
		}
	}
	return models.DailyWorkingHour{}, false
}

// Upsert merges the patch into the entry for dayOfWeek, creating the entry
// with empty times first when the day had none.
func (c Collection) Upsert(dayOfWeek int, patch EntryPatch) Collection {
	entry, found := c.EntryFor(dayOfWeek)
	if !found {
		entry = models.DailyWorkingHour{DayOfWeek: dayOfWeek}
	}
	if patch.StartTime != nil {
		entry.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		entry.EndTime = *patch.EndTime
	}

	out := make(Collection, 0, len(c)+1)
	for _, e := range c {
		if e.DayOfWeek != dayOfWeek {
			out = append(out, e)
		}
	}
	out = append(out, entry)
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out
}

// Remove drops the entry for a weekday entirely. Disabling a day means "no
// record", not a blanked one.
func (c Collection) Remove(dayOfWeek int) Collection {
	out := make(Collection, 0, len(c))
	for _, e := range c {
		if e.DayOfWeek != dayOfWeek {
			out = append(out, e)
		}
	}
	return out
}

// ReplaceAll builds a canonical collection from arbitrary input entries:
// weekdays outside 0..6 are dropped, duplicates collapse last-write-wins, the
// result is sorted.
func ReplaceAll(entries []models.DailyWorkingHour) Collection {
	byDay := make(map[int]models.DailyWorkingHour, len(entries))
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			continue
		}
		byDay[e.DayOfWeek] = e
	}
	out := make(Collection, 0, len(byDay))
	for _, e := range byDay {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out
}

// Entries returns the collection as the plain document slice handed to the
// persistence layer.
func (c Collection) Entries() []models.DailyWorkingHour {
	out := make([]models.DailyWorkingHour, len(c))
	copy(out, c)
	return out
}
