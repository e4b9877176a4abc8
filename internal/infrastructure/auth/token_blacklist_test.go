package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBlacklistJTI(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))

	blacklisted, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = bl.IsBlacklisted(ctx, "jti-other")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryBlacklistExpiredEntry(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", -time.Second))

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted, "expired entries should be treated as not blacklisted")
}

func TestInMemoryBlacklistUserInvalidation(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	issuedBefore := time.Now().Add(-time.Minute)

	invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated)

	require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalidated, "tokens issued before invalidation should be rejected")

	issuedAfter := time.Now().Add(time.Minute)
	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", issuedAfter)
	require.NoError(t, err)
	assert.False(t, invalidated, "tokens issued after invalidation remain valid")

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-2", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated, "other users are unaffected")
}
