// Package export turns an Event record into its calendar export formats:
// a Google Calendar deep-link URL and an iCalendar (RFC 5545) payload.
// Every function here is a pure transformation with no I/O; export never
// fails, it degrades. A record with an unparsable date still produces a
// well-formed output with the date component left empty.
package export

import (
	"sendtocal/internal/domain/entity"
)

// utcBasicLayout is the compact UTC form shared by both export formats:
// the RFC 3339 representation with hyphens, colons and fractional seconds
// stripped, and a literal trailing Z.
const utcBasicLayout = "20060102T150405"

// FormatUTC renders an ISO 8601 date-time string as YYYYMMDDTHHMMSSZ.
// The result is a pure function of the instant: the process time zone
// never influences it. Unparsable input yields the empty string.
func FormatUTC(isoDate string) string {
	t, ok := entity.ParseInstant(isoDate)
	if !ok {
		return ""
	}
	return t.UTC().Format(utcBasicLayout) + "Z"
}
