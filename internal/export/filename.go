package export

import (
	"regexp"
	"strings"
)

// unsafeFilenameChars matches everything that is not a plain letter or digit.
var unsafeFilenameChars = regexp.MustCompile(`(?i)[^a-z0-9]`)

// Filename derives a download filename for the event's ICS file from its
// title: non-alphanumeric characters become underscores, the result is
// lower-cased, and an empty title falls back to "event".
func Filename(title string) string {
	name := strings.ToLower(unsafeFilenameChars.ReplaceAllString(title, "_"))
	if name == "" {
		name = "event"
	}
	return name + ".ics"
}
