package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithContextAndFromContext(t *testing.T) {
	log := zap.NewNop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContextReturnsNopWhenMissing(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Empty(t, GetUserID(ctx))

	// The enriched logger is also reachable through the context
	assert.Same(t, enriched, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	ctx, enriched := WithUserID(context.Background(), zap.NewNop(), "user-1")

	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
}
