package utils

import "time"

// Midnight truncates t to the start of its day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysOfYear enumerates the calendar days of year from January 1 through the
// earlier of December 31 and the day before now. The day in progress is
// excluded because its report only closes at the end of the day.
func DaysOfYear(year int, now time.Time) []time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	yesterday := Midnight(now).AddDate(0, 0, -1)
	if yesterday.Before(end) {
		end = yesterday
	}

	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}
