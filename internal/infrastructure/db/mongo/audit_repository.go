package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

const auditCollection = "audit_events"

var _ ports.AuditLog = (*AuditRepository)(nil)

// AuditRepository appends audit events to the audit_events collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// EnsureIndexes creates the lookup indexes used when browsing the trail.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}}, Options: options.Index().SetName("action")},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}

// Record persists one event.
func (r *AuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, auditDocument(event)); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func auditDocument(event domain.AuditEvent) bson.M {
	doc := bson.M{
		"action":      string(event.Action),
		"username":    event.Username,
		"occurred_at": event.OccurredAt.UTC(),
	}
	if event.Role != "" {
		doc["role"] = string(event.Role)
	}
	if len(event.Details) > 0 {
		details := bson.M{}
		for k, v := range event.Details {
			details[k] = v
		}
		doc["details"] = details
	}
	return doc
}
