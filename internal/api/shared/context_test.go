package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parkerross/totodo-api/internal/api/shared"
)

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)

	assert.Len(t, traceID, 32, "trace ID should be 16 random bytes hex-encoded")
}

func TestGetTraceIDMissing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shared.GetTraceID(context.Background()))
}

func TestTraceIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.False(t, seen[id], "trace IDs must not repeat")
		seen[id] = true
	}
}
