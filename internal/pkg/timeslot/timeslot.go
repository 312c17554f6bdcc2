// Package timeslot normalizes and parses the textual session time slots used
// throughout the course schedule, e.g. "10.00am - 11.30am". Slots use a
// 12-hour clock with an am/pm suffix and either '.' or ':' between hour and
// minute. The normalized form, with single spaces around the hyphen, is the
// canonical lookup key for sessions.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var hyphenSpacing = regexp2.MustCompile(`\s*-\s*`, 0)

// Normalize collapses the whitespace around the separating hyphen to the
// canonical "<start> - <end>" form. Two slot strings that normalize
// identically name the same session.
func Normalize(slot string) string {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ""
	}

	normalized, err := hyphenSpacing.Replace(slot, " - ", -1, -1)
	if err != nil {
		return slot
	}

	return normalized
}

// Range is a parsed slot as minutes since midnight.
type Range struct {
	Start int
	End   int
}

// Contains reports whether the clock time t (minutes since midnight) falls
// inside the range, boundaries included.
func (r Range) Contains(t int) bool {
	return r.Start <= t && t <= r.End
}

// ParseError describes a slot that could not be parsed. Callers that iterate
// over a whole day's sessions are expected to log and skip the offender
// rather than fail.
type ParseError struct {
	Slot   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed time slot %q: %s", e.Slot, e.Reason)
}

// Parse converts a slot string into a Range. The input does not have to be
// normalized first.
func Parse(slot string) (Range, error) {
	normalized := Normalize(slot)

	parts := strings.Split(normalized, " - ")
	if len(parts) != 2 {
		return Range{}, &ParseError{Slot: slot, Reason: "expected a start and an end time"}
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Range{}, &ParseError{Slot: slot, Reason: err.Error()}
	}

	end, err := parseClock(parts[1])
	if err != nil {
		return Range{}, &ParseError{Slot: slot, Reason: err.Error()}
	}

	return Range{Start: start, End: end}, nil
}

// parseClock converts a single 12-hour time like "10.00am" or "1:30pm" to
// minutes since midnight. 12am maps to hour 0 and 12pm stays 12.
func parseClock(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(s, "am"):
		s = strings.TrimSuffix(s, "am")
	case strings.HasSuffix(s, "pm"):
		pm = true
		s = strings.TrimSuffix(s, "pm")
	default:
		return 0, fmt.Errorf("time %q has no am/pm suffix", s)
	}

	s = strings.TrimSpace(s)

	sep := "."
	if strings.Contains(s, ":") {
		sep = ":"
	}

	fields := strings.Split(s, sep)
	if len(fields) != 2 {
		return 0, fmt.Errorf("time %q is not in HH%sMM form", s, sep)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("time %q has an invalid hour", s)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q has an invalid minute", s)
	}

	if pm {
		if hour < 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}
