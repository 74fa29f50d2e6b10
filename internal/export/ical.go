package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sendtocal/internal/domain/entity"
)

// nowFunc supplies DTSTAMP and the UID fallback timestamp; overridable in tests.
var nowFunc = time.Now

// uidFunc generates the VEVENT UID. The fallback covers the vanishingly
// rare case where the system cannot supply randomness.
var uidFunc = func() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("event-%d@sendtocal", nowFunc().UnixMilli())
	}
	return id.String()
}

// ICalendar renders the event as a single-VEVENT VCALENDAR text block.
//
// The output is CRLF-joined with lines in a fixed order. Text fields pass
// through EscapeText; date fields use FormatUTC and degrade to empty
// values rather than failing. DTSTAMP is the generation time in the same
// format as DTSTART/DTEND. Each call produces a fresh UID.
func ICalendar(ev entity.Event) string {
	start := FormatUTC(ev.StartDate)
	end := FormatUTC(ev.EndDate)
	stamp := nowFunc().UTC().Format(utcBasicLayout) + "Z"

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SendToCal//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uidFunc(),
		"DTSTAMP:" + stamp,
		"DTSTART:" + start,
		"DTEND:" + end,
		"SUMMARY:" + EscapeText(ev.Title),
		"DESCRIPTION:" + EscapeText(ev.Description),
		"LOCATION:" + EscapeText(ev.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n")
}

// EscapeText escapes a text value for embedding in an iCalendar content line
// per RFC 5545 section 3.3.11. Backslashes are escaped first so that the
// backslashes introduced by the later substitutions are not escaped again.
func EscapeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
