package discord

import (
	"regexp"
	"strings"
	"time"

	"h37bot/internal/domain"
)

const phaseLayout = "1/2/2006 3:04PM"

var (
	spaces        = regexp.MustCompile(`\s+`)
	meridiemSpace = regexp.MustCompile(` (AM|PM)$`)
)

// ParsePhaseDateTime parses MM/DD/YYYY h:mmAM/PM in loc. Case and a space
// before AM/PM are tolerated. Returns an error if the format is invalid or if
// the date/time is before now.
func ParsePhaseDateTime(raw string, loc *time.Location, now time.Time) (time.Time, error) {
	s := strings.ToUpper(spaces.ReplaceAllString(strings.TrimSpace(raw), " "))
	s = meridiemSpace.ReplaceAllString(s, "$1")
	if s == "" {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	dt, err := time.ParseInLocation(phaseLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateTime
	}
	if dt.Before(now) {
		return time.Time{}, domain.ErrDateTimeInPast
	}
	return dt, nil
}

// FormatPhaseDateTime renders t like "June 25 2024, 8:00 AM CDT".
func FormatPhaseDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2 2006, 3:04 PM MST")
}
