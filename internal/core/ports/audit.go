package ports

import (
	"context"
	"time"

	"github.com/freelancedesk/billable/internal/core/domain"
)

// AuditLog appends security-relevant events. Implementations must be safe for
// concurrent use.
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// SessionRevoker keeps track of session ids that were logged out before they
// expired.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
