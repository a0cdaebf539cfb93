package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forumflow/internal/database"
	"forumflow/internal/models"
)

type userRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{users: db.Collection(database.UsersCollection)}
}

// userUpsertDocument splits the sync write in two: email, name and
// lastLogin are refreshed every call, while role, membership and
// createdAt only land when the upsert inserts.
func userUpsertDocument(email, name string, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"email":     email,
			"name":      name,
			"lastLogin": now,
		},
		"$setOnInsert": bson.M{
			"role":       models.RoleUser,
			"membership": "",
			"createdAt":  now,
		},
	}
}

// Upsert inserts or refreshes the user record keyed on uid in a single
// atomic operation.
func (r *userRepository) Upsert(ctx context.Context, uid, email, name string) error {
	update := userUpsertDocument(email, name, time.Now().UTC())

	_, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.users.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, uid, role string) error {
	result, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) SetMembership(ctx context.Context, uid, membership string) error {
	result, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": bson.M{"membership": membership}})
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
