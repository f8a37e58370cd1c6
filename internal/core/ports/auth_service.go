package ports

import (
	"context"

	"github.com/freelancedesk/billable/internal/core/domain"
)

// Session is a signed credential handed to the browser after login.
type Session struct {
	Token string
	ID    string
	User  *domain.User
}

type AuthService interface {
	// Login checks the credentials and issues a session. Unknown usernames
	// and wrong passwords both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*Session, error)
	// VerifySession resolves a token to its user. Failures are one of
	// domain.ErrSessionMissing, ErrSessionExpired, ErrSessionTampered,
	// ErrSessionRevoked or ErrUserNotFound.
	VerifySession(ctx context.Context, token string) (*domain.User, error)
	// Logout revokes the token's session id when revocation is configured.
	Logout(ctx context.Context, token string) error
}
