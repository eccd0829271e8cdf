// Package validate holds small pure validators for the field formats the
// pipeline standardizes: dates, clock times, emails and numeric ranges.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gmsoft-inc/monitor-engine/pkg/standardize"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Date reports whether s is a calendar date in YYYY-MM-DD form.
func Date(s string) bool {
	_, err := standardize.ParseDate(s)
	return err == nil
}

// ClockTime reports whether s is a wall-clock time in HH:MM:SS form.
func ClockTime(s string) bool {
	_, err := standardize.ParseClockTime(s)
	return err == nil
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// NonEmpty reports whether s contains anything besides whitespace.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Numeric reports whether s parses as a decimal number.
func Numeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// InRange reports whether v lies in [min, max].
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}
