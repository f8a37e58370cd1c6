package service

import (
	"context"

	"github.com/freelancedesk/billable/internal/core/domain"
)

// NopAuditLog discards every event. It is used when no audit store is configured.
type NopAuditLog struct{}

func (NopAuditLog) Record(context.Context, domain.AuditEvent) error { return nil }
