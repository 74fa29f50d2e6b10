package extractor

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"sendtocal/internal/domain/entity"
)

// OpenAI implements EventExtractor using the OpenAI chat completions API.
// The response format is constrained server-side with a JSON schema, which
// keeps the wire payload aligned with the event contract.
type OpenAI struct {
	client          *openai.Client
	apiKey          string
	config          Config
	metricsRecorder ExtractionMetricsRecorder
	now             func() time.Time
}

// NewOpenAI creates a new OpenAI extractor with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	config := LoadOpenAIConfig()

	slog.Info("Initialized OpenAI extractor with configuration",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens),
		slog.Duration("timeout", config.Timeout))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		apiKey:          apiKey,
		config:          config,
		metricsRecorder: NewPrometheusExtractionMetrics(),
		now:             time.Now,
	}
}

// Extract performs a single schema-constrained extraction call.
func (o *OpenAI) Extract(ctx context.Context, in Input) (entity.Event, error) {
	if o.apiKey == "" {
		o.metricsRecorder.RecordFailure(failureKind(ErrMissingAPIKey))
		return entity.Event{}, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	requestID := uuid.New().String()

	img, hasImage := parseDataURL(in.ImageDataURL)
	if in.ImageDataURL != "" && !hasImage {
		slog.WarnContext(ctx, "image data URL did not match the expected pattern, falling back to text only",
			slog.String("request_id", requestID))
	}

	userMessage := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if hasImage {
		userMessage.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: promptText(in, hasImage)},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: img.DataURL}},
		}
		o.metricsRecorder.RecordImageInput()
	} else {
		userMessage.Content = promptText(in, hasImage)
	}

	slog.InfoContext(ctx, "Starting event extraction",
		slog.String("request_id", requestID),
		slog.String("provider", "openai"),
		slog.Int("text_length", len(in.Text)),
		slog.Bool("has_image", hasImage))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemInstruction(o.now())},
			userMessage,
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "calendar_event",
				Schema: json.RawMessage(eventSchemaJSON),
			},
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Extraction failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		o.metricsRecorder.RecordFailure("request")
		return entity.Event{}, &RequestError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		o.metricsRecorder.RecordFailure("empty")
		return entity.Event{}, ErrEmptyResponse
	}

	event, err := decodeEvent(resp.Choices[0].Message.Content)
	if err != nil {
		slog.ErrorContext(ctx, "OpenAI API returned an unparseable payload",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		o.metricsRecorder.RecordFailure("parse")
		return entity.Event{}, err
	}

	slog.InfoContext(ctx, "Extraction completed",
		slog.String("request_id", requestID),
		slog.String("title", event.Title),
		slog.Duration("duration", duration))
	o.metricsRecorder.RecordDuration(duration)

	return event, nil
}
