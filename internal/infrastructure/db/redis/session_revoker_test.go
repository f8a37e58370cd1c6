package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedKey(t *testing.T) {
	assert.Equal(t, "session:revoked:abc-123", revokedKey("abc-123"))
}

func TestSessionRevoker_NonPositiveTTLIsNoop(t *testing.T) {
	// Points at a closed port: any round trip would fail.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	r := NewSessionRevoker(client)
	require.NoError(t, r.Revoke(context.Background(), "abc", 0))
	require.NoError(t, r.Revoke(context.Background(), "abc", -time.Second))
}

func TestSessionRevoker_WrapsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	r := NewSessionRevoker(client)
	revoked, err := r.IsRevoked(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, revoked)
	assert.Contains(t, err.Error(), "revocation check")

	err = r.Revoke(context.Background(), "abc", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke session")
}
