// Package schema validates entity payloads coming off the wire and turns them
// into well-typed records for the storage layer. Insert payloads carry every
// client-settable field; ids and creation timestamps are server-assigned and
// have no representation here. Patch payloads use pointer fields so that only
// the fields actually present in the request are applied; unknown fields are
// dropped during JSON decoding rather than rejected.
package schema

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidationError enumerates every problem found in a payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Problems, ", ")
}

type validator struct {
	problems []string
}

func (v *validator) require(value, field string) {
	if strings.TrimSpace(value) == "" {
		v.problems = append(v.problems, field+" is required")
	}
}

func (v *validator) requireID(value uint, field string) {
	if value == 0 {
		v.problems = append(v.problems, field+" is required")
	}
}

func (v *validator) date(value, field string) time.Time {
	if strings.TrimSpace(value) == "" {
		v.problems = append(v.problems, field+" is required")
		return time.Time{}
	}
	t, err := parseDate(value)
	if err != nil {
		v.problems = append(v.problems, field+" must be a date")
		return time.Time{}
	}
	return t
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

// parseDate accepts the plain date form used by the UI and falls back to
// RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
