package schedule

import "agenda-service/internal/app/models"

// ParseTime converts a strict "HH:mm" wall-clock string to minutes from
// midnight. Anything else (wrong width, missing colon, non-digit characters,
// out-of-range hour or minute) is rejected. Ok is false on rejection.
func ParseTime(s string) (minutes int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// IsValidTimeRange reports whether both bounds parse and start is strictly
// before end. Zero-length and overnight windows are not supported.
func IsValidTimeRange(startTime, endTime string) bool {
	start, ok1 := ParseTime(startTime)
	end, ok2 := ParseTime(endTime)
	if !ok1 || !ok2 {
		return false
	}
	return start < end
}

// DurationMinutes returns the length of the entry's window in minutes from
// start to end. Ok is false for incomplete entries and for windows that do
// not form a valid range.
func DurationMinutes(entry models.DailyWorkingHour) (int, bool) {
	start, ok1 := ParseTime(entry.StartTime)
	end, ok2 := ParseTime(entry.EndTime)
	if !ok1 || !ok2 || end <= start {
		return 0, false
	}
	return end - start, true
}
