package domain

import "time"

// AuditAction names a security-relevant action recorded in the audit trail.
type AuditAction string

const (
	AuditLoginSucceeded    AuditAction = "login_succeeded"
	AuditLoginFailed       AuditAction = "login_failed"
	AuditLogout            AuditAction = "logout"
	AuditTimeEntryCreated  AuditAction = "time_entry_created"
	AuditTimeEntryRejected AuditAction = "time_entry_rejected"
)

// AuditEvent is an append-only record of who did what and when.
type AuditEvent struct {
	Action     AuditAction
	Username   string
	Role       Role
	OccurredAt time.Time
	Details    map[string]any
}
