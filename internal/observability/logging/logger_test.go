package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"sendtocal/internal/handler/http/requestid"
)

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger := NewLogger()

	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLoggerDebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger()

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestWithRequestID(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("context without id returns the same logger", func(t *testing.T) {
		got := WithRequestID(context.Background(), base)
		assert.Same(t, base, got)
	})

	t.Run("context with id returns a derived logger", func(t *testing.T) {
		ctx := requestid.WithRequestID(context.Background(), "req-1")
		got := WithRequestID(ctx, base)
		assert.NotSame(t, base, got)
	})
}

func TestLoggerContext(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
