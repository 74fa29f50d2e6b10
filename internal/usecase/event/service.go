// Package event orchestrates event extraction and calendar export.
// It validates input, delegates model calls to the extractor
// infrastructure, and exposes the export formatters on the resulting
// event records.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"sendtocal/internal/domain/entity"
	"sendtocal/internal/export"
	"sendtocal/internal/infra/extractor"
)

// Service provides event extraction and export operations.
// It orchestrates extractor calls with logging and input validation.
type Service struct {
	extractor extractor.EventExtractor
}

// NewService creates a new event service with the given extractor.
func NewService(ex extractor.EventExtractor) *Service {
	return &Service{extractor: ex}
}

// Extract turns free text and/or an inline image into an event record.
//
// At least one of text and imageDataURL must be non-empty; otherwise
// entity.ErrEmptyInput is returned without touching the extractor.
// Extraction is a single attempt; extractor errors pass through unwrapped
// so callers can classify them.
func (s *Service) Extract(ctx context.Context, text, imageDataURL string) (entity.Event, error) {
	requestID := getOrCreateRequestID(ctx)

	if text == "" && imageDataURL == "" {
		slog.Warn("Extraction requested without any input",
			slog.String("request_id", requestID))
		return entity.Event{}, entity.ErrEmptyInput
	}

	slog.Info("Extracting event",
		slog.String("request_id", requestID),
		slog.Int("text_length", len(text)),
		slog.Bool("has_image", imageDataURL != ""))

	ev, err := s.extractor.Extract(ctx, extractor.Input{
		Text:         text,
		ImageDataURL: imageDataURL,
	})
	if err != nil {
		slog.Error("Extraction failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return entity.Event{}, err
	}

	slog.Info("Extraction succeeded",
		slog.String("request_id", requestID),
		slog.String("title", ev.Title))

	return ev, nil
}

// GoogleCalendarURL returns the prefilled Google Calendar template URL
// for the event.
func (s *Service) GoogleCalendarURL(ev entity.Event) string {
	return export.GoogleCalendarURL(ev)
}

// ICalendar returns the RFC 5545 payload for the event.
func (s *Service) ICalendar(ev entity.Event) string {
	return export.ICalendar(ev)
}

// ICSFilename returns a filesystem-safe download name for the event.
func (s *Service) ICSFilename(ev entity.Event) string {
	return export.Filename(ev.Title)
}

// getOrCreateRequestID extracts the request ID from context or generates
// a new one for standalone callers such as the CLI.
func getOrCreateRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the given request ID for
// correlation across the usecase layer.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
