package extractor

import (
	"encoding/json"
	"strings"

	"sendtocal/internal/domain/entity"
)

// eventSchemaJSON is the response schema every provider constrains the
// model to: an object with five named string fields, three of them
// required. Field descriptions guide the extraction.
const eventSchemaJSON = `{
  "type": "object",
  "properties": {
    "title": {
      "type": "string",
      "description": "A concise title for the event"
    },
    "startDate": {
      "type": "string",
      "description": "Start date and time in ISO 8601 format"
    },
    "endDate": {
      "type": "string",
      "description": "End date and time in ISO 8601 format"
    },
    "location": {
      "type": "string",
      "description": "Physical location or URL"
    },
    "description": {
      "type": "string",
      "description": "Any additional details, agenda, or context found in the text"
    }
  },
  "required": ["title", "startDate", "endDate"],
  "additionalProperties": false
}`

// eventPayload is the wire shape of the model's structured output.
type eventPayload struct {
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// decodeEvent parses the model's text payload into an Event record.
// Optional fields absent from the payload default to the empty string by
// construction. A payload that is not a JSON object of the expected shape
// yields a ParseError carrying the raw text.
func decodeEvent(raw string) (entity.Event, error) {
	trimmed := stripCodeFence(raw)

	var payload eventPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return entity.Event{}, &ParseError{Raw: raw, Err: err}
	}

	return entity.Event{
		Title:       payload.Title,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Location:    payload.Location,
		Description: payload.Description,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
// Providers without native structured output occasionally wrap the JSON
// object in ```json fences despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
