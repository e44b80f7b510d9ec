package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"billboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithSubmissionID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	subLogger := logger.WithSubmissionID("sub-456")
	subLogger.Warn("partial fetch")

	output := buf.String()
	assert.Contains(t, output, "partial fetch")
	assert.Contains(t, output, "submission_id")
	assert.Contains(t, output, "sub-456")
}

func TestLogger_InfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := context.Background()
	logger.InfoContext(ctx, "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	lg := logger.GetLogger()
	require.NotNil(t, lg)
}

func TestLogger_Default(t *testing.T) {
	lg := logger.Default()
	require.NotNil(t, lg)
	// Default() should return the same instance as GetLogger()
	assert.Equal(t, logger.GetLogger(), lg)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	fieldsLogger := logger.WithFields(
		slog.String("service", "vote"),
		slog.String("action", "created"),
	)
	fieldsLogger.Info("vote cast")

	output := buf.String()
	assert.Contains(t, output, "vote cast")
	assert.Contains(t, output, "service")
	assert.Contains(t, output, "vote")
	assert.Contains(t, output, "action")
	assert.Contains(t, output, "created")
}

func TestLogger_SetLevel(t *testing.T) {
	defer logger.SetLevel("info")

	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"unknown", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.New(&buf)
			logger.SetLevel(tt.level)

			lg.Debug("debug line")
			lg.Info("info line")

			assert.Equal(t, tt.debugSeen, strings.Contains(buf.String(), "debug line"))
			assert.Equal(t, tt.infoSeen, strings.Contains(buf.String(), "info line"))
		})
	}
}

func TestLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New(&buf)

	ctx := logger.ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", logger.RequestIDFromContext(ctx))
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))

	lg.With(slog.String("component", "test")).InfoContext(ctx, "with context")
	lg.Info("without context")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"request_id":"req-42"`)
	assert.Contains(t, lines[0], `"component":"test"`)
	assert.NotContains(t, lines[1], "request_id")
}
