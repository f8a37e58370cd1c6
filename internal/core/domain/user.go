package domain

import "time"

// User models an authenticated actor in the system.
// ClientID is set only for RoleClient and scopes everything that user sees.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ClientID     *int64    `json:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the role/client pairing before a user is persisted.
func (u User) Validate() error {
	if u.Username == "" {
		return &ValidationError{Field: "username", Reason: "is required"}
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if u.Role == RoleClient && u.ClientID == nil {
		return &ValidationError{Field: "client_id", Reason: "is required for client users"}
	}
	if u.Role != RoleClient && u.ClientID != nil {
		return &ValidationError{Field: "client_id", Reason: "is only allowed for client users"}
	}
	return nil
}
