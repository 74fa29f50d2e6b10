package extractor

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL(t *testing.T) {
	png := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})

	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantMIME string
	}{
		{
			name:     "valid png data url",
			input:    "data:image/png;base64," + png,
			wantOK:   true,
			wantMIME: "image/png",
		},
		{
			name:     "valid jpeg data url",
			input:    "data:image/jpeg;base64," + png,
			wantOK:   true,
			wantMIME: "image/jpeg",
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "plain http url",
			input:  "https://example.com/poster.png",
			wantOK: false,
		},
		{
			name:   "missing base64 marker",
			input:  "data:image/png," + png,
			wantOK: false,
		},
		{
			name:   "payload is not base64",
			input:  "data:image/png;base64,not base64!!",
			wantOK: false,
		},
		{
			name:   "empty payload",
			input:  "data:image/png;base64,",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, ok := parseDataURL(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMIME, img.MIMEType)
				assert.Equal(t, png, img.Base64)
				assert.Equal(t, tt.input, img.DataURL)
			}
		})
	}
}

func TestBuildSystemInstruction(t *testing.T) {
	now := time.Date(2025, 5, 21, 14, 30, 5, 0, time.UTC)
	got := buildSystemInstruction(now)

	assert.Contains(t, got, "2025-05-21T14:30:05Z")
	assert.Contains(t, got, "5/21/2025")
	assert.Contains(t, got, "2:30:05 PM")
	assert.Contains(t, got, "assume 1 hour")
}

func TestPromptText(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		hasImage bool
		want     string
	}{
		{
			name:     "text wins over default prompt",
			in:       Input{Text: "Lunch with Sam tomorrow at noon"},
			hasImage: true,
			want:     "Lunch with Sam tomorrow at noon",
		},
		{
			name:     "image only falls back to default prompt",
			in:       Input{},
			hasImage: true,
			want:     defaultImagePrompt,
		},
		{
			name:     "no input yields empty text",
			in:       Input{},
			hasImage: false,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promptText(tt.in, tt.hasImage))
		})
	}
}

func TestDecodeEvent(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		ev, err := decodeEvent(`{
			"title": "Team Sync",
			"startDate": "2025-06-01T10:00:00",
			"endDate": "2025-06-01T11:00:00",
			"location": "Room 4",
			"description": "Weekly status"
		}`)
		require.NoError(t, err)
		assert.Equal(t, "Team Sync", ev.Title)
		assert.Equal(t, "2025-06-01T10:00:00", ev.StartDate)
		assert.Equal(t, "2025-06-01T11:00:00", ev.EndDate)
		assert.Equal(t, "Room 4", ev.Location)
		assert.Equal(t, "Weekly status", ev.Description)
	})

	t.Run("optional fields default to empty", func(t *testing.T) {
		ev, err := decodeEvent(`{"title":"Call","startDate":"2025-06-01T10:00","endDate":"2025-06-01T10:30"}`)
		require.NoError(t, err)
		assert.Empty(t, ev.Location)
		assert.Empty(t, ev.Description)
	})

	t.Run("fenced payload", func(t *testing.T) {
		ev, err := decodeEvent("```json\n{\"title\":\"Call\",\"startDate\":\"a\",\"endDate\":\"b\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Call", ev.Title)
	})

	t.Run("invalid json yields ParseError with raw payload", func(t *testing.T) {
		raw := "I could not find an event in that text."
		_, err := decodeEvent(raw)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, raw, parseErr.Raw)
	})
}

func TestFailureKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing key", ErrMissingAPIKey, "config"},
		{"wrapped missing key", errors.Join(errors.New("ctx"), ErrMissingAPIKey), "config"},
		{"empty response", ErrEmptyResponse, "empty"},
		{"parse error", &ParseError{Raw: "x", Err: errors.New("bad")}, "parse"},
		{"request error", &RequestError{Provider: "claude", Err: errors.New("503")}, "request"},
		{"anything else", errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failureKind(tt.err))
		})
	}
}

func TestClaudeExtractMissingAPIKey(t *testing.T) {
	c := &Claude{
		config:          Config{Model: "claude-test", MaxTokens: 1024, Timeout: time.Second},
		metricsRecorder: &NoopMetrics{},
		now:             time.Now,
	}

	_, err := c.Extract(context.Background(), Input{Text: "dinner friday"})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestOpenAIExtractMissingAPIKey(t *testing.T) {
	o := &OpenAI{
		config:          Config{Model: "gpt-test", MaxTokens: 1024, Timeout: time.Second},
		metricsRecorder: &NoopMetrics{},
		now:             time.Now,
	}

	_, err := o.Extract(context.Background(), Input{Text: "dinner friday"})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNoopExtract(t *testing.T) {
	n := &Noop{now: func() time.Time {
		return time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	}}

	ev, err := n.Extract(context.Background(), Input{Text: "Standup\nevery day"})
	require.NoError(t, err)
	assert.Equal(t, "Standup", ev.Title)
	assert.Equal(t, "2025-03-10T10:00:00Z", ev.StartDate)
	assert.Equal(t, "2025-03-10T11:00:00Z", ev.EndDate)
}

func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		provider string
		wantType any
		wantErr  error
	}{
		{"", &Claude{}, nil},
		{"claude", &Claude{}, nil},
		{"OpenAI", &OpenAI{}, nil},
		{"noop", &Noop{}, nil},
		{"bard", nil, ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run("provider "+tt.provider, func(t *testing.T) {
			t.Setenv("EXTRACTOR_PROVIDER", tt.provider)

			ex, err := NewFromEnv()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, ex)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("EXTRACTOR_MODEL", "")
	t.Setenv("EXTRACTOR_MAX_TOKENS", "")
	t.Setenv("EXTRACTOR_TIMEOUT", "")

	cfg := LoadOpenAIConfig()
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsOutOfRangeTokens(t *testing.T) {
	t.Setenv("EXTRACTOR_MAX_TOKENS", "64")

	cfg := LoadClaudeConfig()
	assert.Equal(t, 1024, cfg.MaxTokens)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Model: "m", MaxTokens: 1024, Timeout: time.Minute}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"empty model", func(c *Config) { c.Model = "" }, "model cannot be empty"},
		{"tokens too low", func(c *Config) { c.MaxTokens = 100 }, "below minimum"},
		{"tokens too high", func(c *Config) { c.MaxTokens = 100000 }, "exceeds maximum"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg))
		})
	}
}
