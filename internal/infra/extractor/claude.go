package extractor

import (
	"context"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"sendtocal/internal/domain/entity"
)

// Claude implements EventExtractor using Anthropic's Claude API.
// Claude has no server-side schema enforcement for plain text output, so
// the JSON contract is stated in the system instruction and the response
// payload is validated on decode.
type Claude struct {
	client          anthropic.Client
	apiKey          string
	config          Config
	metricsRecorder ExtractionMetricsRecorder
	now             func() time.Time
}

// NewClaude creates a new Claude extractor with the given API key.
// The key is checked lazily on Extract so that construction never touches
// the network; metrics recording is configured automatically.
func NewClaude(apiKey string) *Claude {
	config := LoadClaudeConfig()

	slog.Info("Initialized Claude extractor with configuration",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens),
		slog.Duration("timeout", config.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey:          apiKey,
		config:          config,
		metricsRecorder: NewPrometheusExtractionMetrics(),
		now:             time.Now,
	}
}

// Extract performs a single schema-constrained extraction call.
func (c *Claude) Extract(ctx context.Context, in Input) (entity.Event, error) {
	if c.apiKey == "" {
		c.metricsRecorder.RecordFailure(failureKind(ErrMissingAPIKey))
		return entity.Event{}, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	requestID := uuid.New().String()

	img, hasImage := parseDataURL(in.ImageDataURL)
	if in.ImageDataURL != "" && !hasImage {
		slog.WarnContext(ctx, "image data URL did not match the expected pattern, falling back to text only",
			slog.String("request_id", requestID))
	}

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(promptText(in, hasImage) + "\n\nRespond with only a JSON object matching this schema:\n" + eventSchemaJSON),
	}
	if hasImage {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MIMEType, img.Base64))
		c.metricsRecorder.RecordImageInput()
	}

	slog.InfoContext(ctx, "Starting event extraction",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.Int("text_length", len(in.Text)),
		slog.Bool("has_image", hasImage))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: buildSystemInstruction(c.now())},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Extraction failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		c.metricsRecorder.RecordFailure("request")
		return entity.Event{}, &RequestError{Provider: "claude", Err: err}
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		c.metricsRecorder.RecordFailure("empty")
		return entity.Event{}, ErrEmptyResponse
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok || textBlock.Text == "" {
		slog.ErrorContext(ctx, "Claude API returned no text payload",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		c.metricsRecorder.RecordFailure("empty")
		return entity.Event{}, ErrEmptyResponse
	}

	event, err := decodeEvent(textBlock.Text)
	if err != nil {
		slog.ErrorContext(ctx, "Claude API returned an unparseable payload",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		c.metricsRecorder.RecordFailure("parse")
		return entity.Event{}, err
	}

	slog.InfoContext(ctx, "Extraction completed",
		slog.String("request_id", requestID),
		slog.String("title", event.Title),
		slog.Duration("duration", duration))
	c.metricsRecorder.RecordDuration(duration)

	return event, nil
}
