package schedule

import (
	"agenda-service/internal/app/models"
	"errors"
	"fmt"
)

// Default window seeded when a day is toggled on and no parent schedule
// provides one for that weekday.
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "18:00"
)

var (
	ErrSourceDayMissing    = errors.New("source day has no working hours")
	ErrSourceDayIncomplete = errors.New("source day is missing a start or end time")
	ErrSourceDayInvalid    = errors.New("source day has an invalid window")
)

// ToggleDayOn enables a weekday. A day that already has an entry is left
// alone; otherwise the entry is seeded from the parent's window for the same
// weekday when one exists, falling back to the default window.
func ToggleDayOn(c Collection, dayOfWeek int, parent Collection) Collection {
	if _, found := c.EntryFor(dayOfWeek); found {
		return c
	}
	start, end := DefaultStartTime, DefaultEndTime
	if parent != nil {
		if parentEntry, found := parent.EntryFor(dayOfWeek); found && parentEntry.IsComplete() {
			start, end = parentEntry.StartTime, parentEntry.EndTime
		}
	}
	return c.Upsert(dayOfWeek, EntryPatch{StartTime: &start, EndTime: &end})
}

// ToggleDayOff disables a weekday by removing its record entirely.
func ToggleDayOff(c Collection, dayOfWeek int) Collection {
	return c.Remove(dayOfWeek)
}

// SkippedDay names a weekday the copy operation refused and why.
type SkippedDay struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Reason    string `json:"reason"`
}

// CopyOutcome reports what a copy-to-all-days actually did.
type CopyOutcome struct {
	AppliedDays []int        `json:"appliedDays"`
	Skipped     []SkippedDay `json:"skipped,omitempty"`
}

// CopyToAllDays sets every weekday to the source day's window. The source
// must be complete and valid. Under an active parent schedule, days that
// cannot legally accept the window are skipped and reported instead of
// failing the whole operation.
func CopyToAllDays(c Collection, sourceDay int, parent Collection) (Collection, CopyOutcome, error) {
	source, found := c.EntryFor(sourceDay)
	if !found {
		return c, CopyOutcome{}, ErrSourceDayMissing
	}
	if !source.IsComplete() {
		return c, CopyOutcome{}, ErrSourceDayIncomplete
	}
	if dayErr := ValidateDay(source, parent); dayErr != nil {
		return c, CopyOutcome{}, fmt.Errorf("%w: %s", ErrSourceDayInvalid, dayErr.Message())
	}

	outcome := CopyOutcome{}
	entries := c.Entries()
	for day := 0; day <= 6; day++ {
		candidate := models.DailyWorkingHour{
			DayOfWeek: day,
			StartTime: source.StartTime,
			EndTime:   source.EndTime,
		}
		if dayErr := ValidateDay(candidate, parent); dayErr != nil {
			outcome.Skipped = append(outcome.Skipped, SkippedDay{
				DayOfWeek: day,
				Reason:    dayErr.Message(),
			})
			continue
		}
		entries = append(entries, candidate)
		outcome.AppliedDays = append(outcome.AppliedDays, day)
	}
	return ReplaceAll(entries), outcome, nil
}
