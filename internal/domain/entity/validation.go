package entity

import "time"

// instantLayouts are the accepted ISO 8601 shapes, tried in order.
// The model is instructed to emit full ISO 8601 date-times, but it may omit
// the zone designator or the time entirely; zoneless values are interpreted
// as UTC so that parsing is independent of the process time zone.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses an ISO 8601 date-time string into an absolute instant.
// It returns ok=false for anything it cannot parse, including the empty
// string; callers are expected to degrade rather than fail.
func ParseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validateDate returns an advisory ValidationError when the value is not a
// parseable instant. An empty value is reported too; the record remains usable.
func validateDate(field, value string) error {
	if _, ok := ParseInstant(value); !ok {
		return &ValidationError{Field: field, Message: "not a parseable ISO 8601 date-time"}
	}
	return nil
}
