package extractor

import (
	"encoding/base64"
	"regexp"
)

// dataURLPattern is the fixed shape an embedded image must have.
// Anything that does not match is treated as no image at all.
var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// imagePart is a decoded inline image ready to be attached to a model request.
type imagePart struct {
	MIMEType string
	// Base64 is the payload exactly as it appeared in the data URL; the
	// Anthropic API consumes it in this form.
	Base64 string
	// DataURL is the original, validated data URL; the OpenAI API consumes
	// image content as a URL and accepts the data scheme directly.
	DataURL string
}

// parseDataURL extracts the MIME type and base64 payload from a data URL.
// It returns ok=false for the empty string, for anything not matching the
// fixed pattern, and for payloads that are not valid base64; callers fall
// back to text-only content rather than failing.
func parseDataURL(s string) (imagePart, bool) {
	if s == "" {
		return imagePart{}, false
	}
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return imagePart{}, false
	}
	if _, err := base64.StdEncoding.DecodeString(m[2]); err != nil {
		return imagePart{}, false
	}
	return imagePart{MIMEType: m[1], Base64: m[2], DataURL: s}, true
}
