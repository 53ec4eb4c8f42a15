package schedule

import (
	"agenda-service/internal/app/models"
	"fmt"
	"strings"
)

// ErrorKind classifies a single day's validation failure.
type ErrorKind string

const (
	ErrorMissingEnd         ErrorKind = "missing_end"
	ErrorMissingStart       ErrorKind = "missing_start"
	ErrorInvalidRange       ErrorKind = "invalid_range"
	ErrorInvalidFormat      ErrorKind = "invalid_format"
	ErrorOutsideParentRange ErrorKind = "outside_parent_range"
)

var errorMessages = map[ErrorKind]string{
	ErrorMissingEnd:         "fill in the end time as well",
	ErrorMissingStart:       "fill in the start time as well",
	ErrorInvalidRange:       "start time must be earlier than end time",
	ErrorInvalidFormat:      "times must use the HH:mm format",
	ErrorOutsideParentRange: "the window must stay within the parent schedule for this day",
}

// DayError is one weekday's validation failure. The message derives from the
// kind and is never stored independently.
type DayError struct {
	DayOfWeek int       `json:"dayOfWeek"`
	Kind      ErrorKind `json:"kind"`
}

func (e DayError) Message() string {
	return errorMessages[e.Kind]
}

// ValidateDay classifies a single entry against the per-day rules and, when a
// parent collection is supplied, the containment rule. At most one kind
// applies; a nil result means the entry is either valid or empty.
func ValidateDay(entry models.DailyWorkingHour, parent Collection) *DayError {
	switch {
	case entry.StartTime != "" && entry.EndTime == "":
		return &DayError{DayOfWeek: entry.DayOfWeek, Kind: ErrorMissingEnd}
	case entry.EndTime != "" && entry.StartTime == "":
		return &DayError{DayOfWeek: entry.DayOfWeek, Kind: ErrorMissingStart}
	case entry.StartTime != "" && entry.EndTime != "":
		start, okStart := ParseTime(entry.StartTime)
		end, okEnd := ParseTime(entry.EndTime)
		if !okStart || !okEnd {
			return &DayError{DayOfWeek: entry.DayOfWeek, Kind: ErrorInvalidFormat}
		}
		if start >= end {
			return &DayError{DayOfWeek: entry.DayOfWeek, Kind: ErrorInvalidRange}
		}
		if parent != nil && !containedInParent(entry, start, end, parent) {
			return &DayError{DayOfWeek: entry.DayOfWeek, Kind: ErrorOutsideParentRange}
		}
	}
	return nil
}

// Validate runs the per-day rules over every entry present. The map is
// re-derived from scratch after every mutation; the collection is bounded to
// seven entries so consistency wins over incremental bookkeeping.
func Validate(c Collection, parent Collection) map[int]*DayError {
	errs := make(map[int]*DayError, len(c))
	for _, entry := range c {
		errs[entry.DayOfWeek] = ValidateDay(entry, parent)
	}
	return errs
}

// containedInParent checks child ⊆ parent for the same weekday. A day the
// parent does not work at all cannot host a child window.
func containedInParent(entry models.DailyWorkingHour, start, end int, parent Collection) bool {
	parentEntry, found := parent.EntryFor(entry.DayOfWeek)
	if !found || !parentEntry.IsComplete() {
		return false
	}
	parentStart, okStart := ParseTime(parentEntry.StartTime)
	parentEnd, okEnd := ParseTime(parentEntry.EndTime)
	if !okStart || !okEnd {
		return false
	}
	return start >= parentStart && end <= parentEnd
}

// SaveGateError is the consolidated report produced when a collection is
// rejected before persistence. Every offending day is listed; nothing saves
// partially.
type SaveGateError struct {
	Errors []DayError
}

func (e *SaveGateError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, dayErr := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", DayName(dayErr.DayOfWeek), dayErr.Message()))
	}
	return strings.Join(parts, "; ")
}

// CheckForSave is the save-time gate: stricter than the per-day map in that it
// aggregates every failure (format, incomplete pair, inverted range and, when
// a parent is active, containment) into one report. A nil return means the
// collection may be handed to the persistence layer as-is.
func CheckForSave(c Collection, parent Collection) *SaveGateError {
	var offending []DayError
	for _, entry := range c {
		if dayErr := ValidateDay(entry, parent); dayErr != nil {
			offending = append(offending, *dayErr)
		}
	}
	if len(offending) > 0 {
		return &SaveGateError{Errors: offending}
	}
	return nil
}
