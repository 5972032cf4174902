package validation

import (
	"strings"
	"time"
)

// dateLayout is the wire format for date range parameters.
const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd query parameter.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateRange is an inclusive calendar date range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses a from/to parameter pair, falling back to the
// given defaults for missing values. Returns false when a supplied value
// is malformed or the range is inverted.
func ParseDateRange(fromStr, toStr string, defaultFrom, defaultTo time.Time) (DateRange, bool) {
	from := defaultFrom
	to := defaultTo

	if fromStr != "" {
		t, ok := ParseDate(fromStr)
		if !ok {
			return DateRange{}, false
		}
		from = t
	}
	if toStr != "" {
		t, ok := ParseDate(toStr)
		if !ok {
			return DateRange{}, false
		}
		to = t
	}
	if to.Before(from) {
		return DateRange{}, false
	}
	return DateRange{From: from, To: to}, true
}

// CurrentMonth returns the first day of now's month through now.
func CurrentMonth(now time.Time) DateRange {
	y, m, _ := now.Date()
	return DateRange{
		From: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()),
		To:   now,
	}
}

// PreviousMonth returns the full calendar month before now's.
func PreviousMonth(now time.Time) DateRange {
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return DateRange{
		From: first.AddDate(0, -1, 0),
		To:   first.AddDate(0, 0, -1),
	}
}

// ValidateURL reports whether a page URL uses an http or https scheme,
// with a user-facing message when it does not.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}
	lower := strings.ToLower(urlStr)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false, "URL must use http:// or https:// scheme"
	}
	return true, ""
}
