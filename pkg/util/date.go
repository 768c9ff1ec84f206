package util

import "time"

const dateLayout = "2006-01-02"

// FormatDate renders t as a calendar day, no time component.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a calendar-day string.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// YearRange returns [now − 365 days, now] as calendar dates. No timezone
// adjustment is applied; dates are provider-local by convention.
func YearRange(now time.Time) (from, to string) {
	return FormatDate(now.AddDate(0, 0, -365)), FormatDate(now)
}
