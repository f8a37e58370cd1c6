package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancedesk/billable/internal/core/ports"
)

const revokedPrefix = "session:revoked:"

var _ ports.SessionRevoker = (*SessionRevoker)(nil)

// SessionRevoker is a denylist of logged-out session ids backed by Redis.
// Key format: session:revoked:<session_id>. Keys expire together with the
// token they revoke, so the set never outgrows the live sessions.
type SessionRevoker struct {
	client *redis.Client
}

// NewSessionRevoker creates a SessionRevoker wrapping the given Redis client.
func NewSessionRevoker(client *redis.Client) *SessionRevoker {
	return &SessionRevoker{client: client}
}

// IsRevoked reports whether the session was logged out.
func (r *SessionRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// Revoke marks the session as logged out for ttl.
func (r *SessionRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func revokedKey(sessionID string) string {
	return revokedPrefix + sessionID
}
