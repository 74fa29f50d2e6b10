package extractor

import (
	"context"
	"log/slog"
	"time"

	"sendtocal/internal/domain/entity"
)

// Noop is a deterministic extractor for local development and tests.
// It never calls a network and returns a canned event derived from the input.
type Noop struct {
	now func() time.Time
}

// NewNoop creates a no-op extractor.
func NewNoop() *Noop {
	slog.Info("Initialized noop extractor")
	return &Noop{now: time.Now}
}

// Extract returns a fixed one-hour event starting at the next full hour.
func (n *Noop) Extract(_ context.Context, in Input) (entity.Event, error) {
	start := n.now().UTC().Truncate(time.Hour).Add(time.Hour)

	title := "Extracted Event"
	if in.Text != "" {
		title = firstLine(in.Text)
	}

	return entity.Event{
		Title:       title,
		StartDate:   start.Format(time.RFC3339),
		EndDate:     start.Add(time.Hour).Format(time.RFC3339),
		Description: in.Text,
	}, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return s[:i]
		}
	}
	return s
}
