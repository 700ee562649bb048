package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

const (
	usersCollection   = "users"
	configsCollection = "user_configs"
)

// MongoUserRepository persists user records and per-user configuration.
// Email uniqueness is enforced by a partial unique index that covers only
// admin and user records: guests all share the fixed guest address, so
// repeated guest creation must never collide.
type MongoUserRepository struct {
	users   *mongo.Collection
	configs *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users:   db.Collection(usersCollection),
		configs: db.Collection(configsCollection),
	}
}

// EnsureIndexes creates the indexes the repository relies on. The email
// index is partial because $ne is not allowed in partial filter expressions;
// enumerating the non-guest roles keeps guest records out of the index.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	nonGuest := bson.M{"role": bson.M{"$in": []string{
		string(domain.RoleAdmin),
		string(domain.RoleUser),
	}}}

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(nonGuest),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

type userDoc struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Role  string `bson:"role"`
}

type configDoc struct {
	UserID        string `bson:"_id"`
	Theme         string `bson:"theme"`
	Language      string `bson:"language"`
	Notifications bool   `bson:"notifications"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(doc), nil
}

func (r *MongoUserRepository) List(ctx context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}

	total, err := r.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	limit := int64(f.Limit)
	skip := int64(f.Page-1) * limit
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, toUser(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *MongoUserRepository) SaveConfig(ctx context.Context, userID string, cfg domain.UserConfig) error {
	doc := configDoc{
		UserID:        userID,
		Theme:         cfg.Theme,
		Language:      cfg.Language,
		Notifications: cfg.Notifications,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.configs.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts); err != nil {
		return fmt.Errorf("save user config: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindConfig(ctx context.Context, userID string) (*domain.UserConfig, error) {
	var doc configDoc
	if err := r.configs.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user config: %w", err)
	}
	return &domain.UserConfig{
		Theme:         doc.Theme,
		Language:      doc.Language,
		Notifications: doc.Notifications,
	}, nil
}

func toUser(doc userDoc) *domain.User {
	return &domain.User{
		ID:    doc.ID,
		Name:  doc.Name,
		Email: doc.Email,
		Role:  domain.UserRole(doc.Role),
	}
}
