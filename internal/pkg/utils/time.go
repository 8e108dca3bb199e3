package utils

import "time"

// NormalizeDate converts to UTC at the millisecond precision MongoDB stores.
func NormalizeDate(date time.Time) time.Time {
	return date.UTC().Truncate(time.Millisecond)
}

// UniqueDates normalizes dates and drops repeated instants while keeping
// first-seen order.
func UniqueDates(dates []time.Time) []time.Time {
	seen := make(map[int64]struct{}, len(dates))
	unique := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		date = NormalizeDate(date)
		key := date.UnixMilli()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, date)
	}
	return unique
}

// DayWindow returns [start of day, start of next day) for now in loc.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
