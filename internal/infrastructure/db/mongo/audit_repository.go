package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

const auditCollection = "user_audit"

// MongoAuditRepository is the insert-mostly store for the user audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	UserID    string `bson:"user_id"`
	Action    string `bson:"action"`
	Actor     string `bson:"actor,omitempty"`
	Timestamp int64  `bson:"timestamp"`
	Checksum  string `bson:"checksum"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := auditDoc{
		UserID:    event.UserID,
		Action:    event.Action,
		Actor:     event.Actor,
		Timestamp: event.Timestamp.Unix(),
		Checksum:  event.Hash(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*domain.AuditEvent
	for cursor.Next(ctx) {
		var doc auditDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, &domain.AuditEvent{
			UserID:    doc.UserID,
			Action:    doc.Action,
			Actor:     doc.Actor,
			Timestamp: time.Unix(doc.Timestamp, 0).UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}

	return events, nil
}
