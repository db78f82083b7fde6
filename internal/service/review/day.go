package review

import "time"

// DayStart returns the start of the calendar day containing now in tz,
// converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns the start of the following calendar day in tz,
// converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(now, tz).In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dateKey formats a timestamp as its calendar date in tz.
func dateKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format("2006-01-02")
}
