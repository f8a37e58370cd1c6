package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/freelancedesk/billable/internal/core/domain"
)

func TestAuditDocument(t *testing.T) {
	at := time.Date(2024, 3, 18, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	doc := auditDocument(domain.AuditEvent{
		Action:     domain.AuditTimeEntryCreated,
		Username:   "freelancer",
		Role:       domain.RoleFreelancer,
		OccurredAt: at,
		Details:    map[string]any{"project_id": int64(2), "hours": 3.5},
	})

	assert.Equal(t, "time_entry_created", doc["action"])
	assert.Equal(t, "freelancer", doc["username"])
	assert.Equal(t, "freelancer", doc["role"])
	assert.Equal(t, at.UTC(), doc["occurred_at"])
	assert.Equal(t, bson.M{"project_id": int64(2), "hours": 3.5}, doc["details"])
}

func TestAuditDocument_OmitsEmptyFields(t *testing.T) {
	doc := auditDocument(domain.AuditEvent{Action: domain.AuditLoginFailed, Username: "ghost"})

	assert.NotContains(t, doc, "role")
	assert.NotContains(t, doc, "details")
}
