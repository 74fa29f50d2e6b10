// Package extractor provides AI-powered event extraction implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs that turn
// unstructured input (free text and/or one embedded image) into a normalized
// Event record, constrained to a fixed five-field JSON schema, with
// structured logging and Prometheus metrics.
//
// Extraction is a single attempt by contract: no retries, no circuit
// breaker, no timeout beyond the per-call configuration. The caller decides
// whether to re-invoke after a failure.
package extractor

import (
	"context"

	"sendtocal/internal/domain/entity"
)

// Input is the unstructured material a record is extracted from.
// Text may be empty when an image is supplied. ImageDataURL, when present,
// must be a data URL of the form data:<mime>;base64,<payload>; anything
// else is treated as absent and extraction falls back to text only.
type Input struct {
	Text         string
	ImageDataURL string
}

// EventExtractor turns unstructured input into an Event record.
// Implementations return either a complete record (optional fields
// defaulted to the empty string) or an error from the package taxonomy;
// never a partial result.
type EventExtractor interface {
	Extract(ctx context.Context, in Input) (entity.Event, error)
}
