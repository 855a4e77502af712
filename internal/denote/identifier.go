package denote

import (
	"errors"
	"fmt"
	"time"
)

// IdentifierLayout is the time layout of a note identifier.
const IdentifierLayout = "20060102T150405"

// IdentifierLen is the fixed width of an identifier.
const IdentifierLen = len(IdentifierLayout)

// ErrClock is returned when no usable time is available to derive an identifier.
var ErrClock = errors.New("clock unavailable")

// Generate formats now as an identifier and, if that identifier is already
// taken, advances one second at a time until a free one is found.
//
// The identifier is formatted in now's location. A zero now means the time
// source is unavailable.
func Generate(now time.Time, existing map[string]struct{}) (string, error) {
	if now.IsZero() {
		return "", ErrClock
	}
	t := now.Truncate(time.Second)
	// existing is finite and t only moves forward, so this terminates.
	for {
		if y := t.Year(); y < 0 || y > 9999 {
			return "", fmt.Errorf("%w: year %d out of range", ErrClock, y)
		}
		id := t.Format(IdentifierLayout)
		if _, taken := existing[id]; !taken {
			return id, nil
		}
		t = t.Add(time.Second)
	}
}

// IsIdentifier reports whether s is exactly 8 digits, "T", 6 digits.
func IsIdentifier(s string) bool {
	if len(s) != IdentifierLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 8 {
			if c != 'T' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseIdentifier converts an identifier back into the instant it encodes.
func ParseIdentifier(id string, loc *time.Location) (time.Time, error) {
	if !IsIdentifier(id) {
		return time.Time{}, &FormatError{Name: id, Err: ErrBadIdentifier}
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(IdentifierLayout, id, loc)
	if err != nil {
		return time.Time{}, &FormatError{Name: id, Err: fmt.Errorf("%w: %v", ErrBadIdentifier, err)}
	}
	return t, nil
}
