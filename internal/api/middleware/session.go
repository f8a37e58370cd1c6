package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/billable/internal/api/metrics"
	"github.com/freelancedesk/billable/internal/core/domain"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// Context keys set by Session for authenticated requests.
const (
	userKey     = "user"
	usernameKey = "username"
	roleKey     = "role"
	clientIDKey = "client_id"
)

// SessionVerifier resolves a session token to its user.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*domain.User, error)
}

// Session resolves the session cookie into the request context. It never
// rejects a request: an absent or invalid session leaves the request
// anonymous and RequireUser decides what to do with it.
func Session(verifier SessionVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}

			user, err := verifier.VerifySession(c.Request().Context(), token)
			result := verificationResult(err)
			metrics.SessionVerificationsTotal.WithLabelValues(result).Inc()

			if err != nil {
				if result == "error" {
					log.Warn().
						Err(err).
						Str("path", c.Path()).
						Msg("session verification failed, continuing as anonymous")
				}
				return next(c)
			}

			setUser(c, user)
			return next(c)
		}
	}
}

// RequireUser fails anonymous requests with domain.ErrUnauthenticated, which
// the error handler turns into a redirect to the login page.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Session, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userKey).(*domain.User)
	return user
}

func setUser(c echo.Context, user *domain.User) {
	c.Set(userKey, user)
	c.Set(usernameKey, user.Username)
	c.Set(roleKey, user.Role)
	if user.ClientID != nil {
		c.Set(clientIDKey, *user.ClientID)
	}
}

func verificationResult(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, domain.ErrSessionMissing):
		return "missing"
	case errors.Is(err, domain.ErrSessionExpired):
		return "expired"
	case errors.Is(err, domain.ErrSessionTampered):
		return "tampered"
	case errors.Is(err, domain.ErrSessionRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrUserNotFound):
		return "unknown_user"
	default:
		return "error"
	}
}

// ClearSessionCookie returns a cookie that makes the browser drop the session.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
