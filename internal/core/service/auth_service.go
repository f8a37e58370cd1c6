package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

var _ ports.AuthService = (*AuthService)(nil)

// sessionClaims is the JWT payload carried in the session cookie.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements login, session verification and logout.
type AuthService struct {
	users    ports.UserRepository
	revoker  ports.SessionRevoker
	audit    ports.AuditLog
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

type AuthOption func(*AuthService)

// WithRevoker enables logout revocation. Without it Logout only clears the
// cookie and tokens stay valid until they expire.
func WithRevoker(r ports.SessionRevoker) AuthOption {
	return func(s *AuthService) { s.revoker = r }
}

func WithAuditLog(a ports.AuditLog) AuthOption {
	return func(s *AuthService) { s.audit = a }
}

func WithAuthLogger(l zerolog.Logger) AuthOption {
	return func(s *AuthService) { s.logger = l }
}

func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, opts ...AuthOption) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTTL
	}
	s := &AuthService{
		users:    users,
		audit:    NopAuditLog{},
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL is the lifetime of issued sessions.
func (s *AuthService) TTL() time.Duration { return s.tokenTTL }

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.record(ctx, domain.AuditEvent{Action: domain.AuditLoginFailed, Username: username})
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(ctx, domain.AuditEvent{Action: domain.AuditLoginFailed, Username: username, Role: user.Role})
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.AuditEvent{Action: domain.AuditLoginSucceeded, Username: user.Username, Role: user.Role})
	return session, nil
}

func (s *AuthService) issue(user *domain.User) (*ports.Session, error) {
	now := s.now()
	id := uuid.NewString()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	return &ports.Session{Token: token, ID: id, User: user}, nil
}

// parse checks signature and expiry and classifies the failure.
func (s *AuthService) parse(token string) (*sessionClaims, error) {
	if token == "" {
		return nil, domain.ErrSessionMissing
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrSessionExpired
	default:
		return nil, domain.ErrSessionTampered
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, domain.ErrSessionTampered
	}
	return claims, nil
}

func (s *AuthService) VerifySession(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("session_id", claims.ID).Msg("revocation check failed")
		} else if revoked {
			return nil, domain.ErrSessionRevoked
		}
	}

	user, err := s.users.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return user, nil
}

// Logout revokes a still-valid session for its remaining lifetime. Invalid
// tokens are ignored: there is nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	s.record(ctx, domain.AuditEvent{Action: domain.AuditLogout, Username: claims.Subject, Role: domain.Role(claims.Role)})

	if s.revoker == nil {
		return nil
	}
	remaining := claims.ExpiresAt.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, remaining); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *AuthService) record(ctx context.Context, event domain.AuditEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("action", string(event.Action)).Msg("audit record failed")
	}
}
