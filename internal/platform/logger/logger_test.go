package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkerross/totodo-api/internal/platform/logger"
)

func TestWithLoggerRoundTrip(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := logger.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logger.FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{
			name: "context logger wins",
			ctx:  logger.WithLogger(context.Background(), custom),
			want: custom,
		},
		{
			name: "fallback used when context is bare",
			ctx:  context.Background(),
			want: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, logger.FromContextOrDefault(tt.ctx, fallback))
		})
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	// Restore the process default afterwards so other tests keep their output.
	prev := slog.Default()
	defer slog.SetDefault(prev)

	log := logger.Setup("extremely-verbose")
	assert.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}
