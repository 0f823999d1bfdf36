package entries

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Normalise converts a worksheet date cell to MM/DD/YYYY. Cells that are blank or
// cannot be parsed as a calendar date return false.
func Normalise(cell string, loc *time.Location) (string, bool) {
	v := strings.TrimSpace(cell)
	if v == "" {
		return "", false
	}

	if t, err := time.ParseInLocation(DateFormat, v, loc); err == nil && t.Format(DateFormat) == v {
		return v, true
	}

	t, ok := parse(v, loc)
	if !ok {
		return "", false
	}

	return t.Format(DateFormat), true
}

// Matches returns true if the cell holds the same calendar day as 'date', which
// is expected to be in MM/DD/YYYY format.
func Matches(cell string, date string, loc *time.Location) bool {
	v := strings.TrimSpace(cell)
	if v == "" {
		return false
	}

	if v == date {
		return true
	}

	if normalised, ok := Normalise(v, loc); ok {
		return normalised == date
	}

	return false
}

// dateparse has panicked on odd inputs in the past so any panic is treated
// the same as a parse error.
func parse(v string, loc *time.Location) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t = time.Time{}
			ok = false
		}
	}()

	if loc == nil {
		loc = time.Local
	}

	parsed, err := dateparse.ParseIn(v, loc)
	if err != nil || parsed.IsZero() {
		return time.Time{}, false
	}

	return parsed.In(loc), true
}
