// Package temporal turns the loosely formatted date strings the community
// APIs hand back into canonical instants, and classifies instants against
// wall-clock time.
package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Status is an item's state relative to a single evaluation instant.
type Status int

const (
	StatusUpcoming Status = iota
	StatusLive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusLive:
		return "live"
	case StatusEnded:
		return "ended"
	default:
		return "upcoming"
	}
}

var monthNumbers = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	monthDayYear = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2}),?\s*(\d{4})`)
	dayCommaYear = regexp.MustCompile(`(\d{1,2}),\s*(\d{4})`)
)

// ParseInstant parses a heterogeneous human or ISO date string.
// Attempts in order: direct parse, small textual repairs, then a
// "<month> <day>, <year>" match resolved to end-of-day UTC. Returns
// false if nothing works; it never returns an error.
func ParseInstant(text string) (time.Time, bool) {
	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" {
		return time.Time{}, false
	}

	if t, err := dateparse.ParseAny(cleaned); err == nil {
		return t, true
	}

	repairs := []string{
		dayCommaYear.ReplaceAllString(cleaned, "$1 $2"),
		strings.ReplaceAll(cleaned, ",", ""),
	}
	for _, r := range repairs {
		if r == cleaned {
			continue
		}
		if t, err := dateparse.ParseAny(r); err == nil {
			return t, true
		}
	}

	if m := monthDayYear.FindStringSubmatch(cleaned); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if day >= 1 && day <= 31 {
				// A bare calendar date means "by end of that day".
				return time.Date(year, month, day, 23, 59, 59, 999*int(time.Millisecond), time.UTC), true
			}
		}
	}

	return time.Time{}, false
}

// IsPast reports whether instant is strictly before now.
func IsPast(instant, now time.Time) bool {
	return instant.Before(now)
}

// StatusAt classifies a start/end window against now.
// ended iff end < now; live iff start <= now < end; otherwise upcoming.
func StatusAt(start, end, now time.Time) Status {
	if end.Before(now) {
		return StatusEnded
	}
	if !start.After(now) && now.Before(end) {
		return StatusLive
	}
	return StatusUpcoming
}
