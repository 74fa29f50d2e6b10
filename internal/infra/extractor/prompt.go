package extractor

import (
	"fmt"
	"time"
)

// defaultImagePrompt is used as the text part when the caller supplies an
// image without any accompanying text.
const defaultImagePrompt = "Extract event details from this image."

// buildSystemInstruction renders the scheduling-assistant instruction with
// the current reference time embedded. The reference time must be computed
// at call time, never cached: resolving "tomorrow" or "next Friday" depends
// on it.
func buildSystemInstruction(now time.Time) string {
	return fmt.Sprintf(`You are an expert personal assistant specializing in scheduling.
Current Reference Time: %s (%s %s).

Your task is to extract event details from the user's text or image input.
- Infer the correct year if omitted.
- If "tomorrow" or "next Friday" is used, calculate the specific ISO date based on the Current Reference Time.
- If no duration is specified, assume 1 hour.
- If no time is specified for the start, assume it's an all-day event or set to 09:00 local time if ambiguous.
- Format dates as full ISO 8601 strings (e.g., 2024-05-21T14:30:00).
- If a specific piece of information (like location or description) is missing, return an empty string for that field.
- If the input is a screenshot or image, extract all relevant event details visible in the image.`,
		now.Format(time.RFC3339),
		now.Format("1/2/2006"),
		now.Format("3:04:05 PM"))
}

// promptText picks the user-visible text part for a request: the caller's
// text when present, otherwise the default image prompt.
func promptText(in Input, hasImage bool) string {
	if in.Text != "" {
		return in.Text
	}
	if hasImage {
		return defaultImagePrompt
	}
	return in.Text
}
