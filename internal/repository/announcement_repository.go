package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forumflow/internal/database"
	"forumflow/internal/models"
)

type announcementRepository struct {
	announcements *mongo.Collection
}

func NewAnnouncementRepository(db *database.DB) AnnouncementRepository {
	return &announcementRepository{announcements: db.Collection(database.AnnouncementsCollection)}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) (string, error) {
	announcement.ID = primitive.NewObjectID()
	announcement.CreatedAt = time.Now().UTC()

	result, err := r.announcements.InsertOne(ctx, announcement)
	if err != nil {
		return "", fmt.Errorf("failed to create announcement: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	cursor, err := r.announcements.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	announcements := []models.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, fmt.Errorf("failed to decode announcements: %w", err)
	}

	return announcements, nil
}

func (r *announcementRepository) Delete(ctx context.Context, announcementID string) error {
	objectID, err := parseObjectID(announcementID)
	if err != nil {
		return err
	}

	result, err := r.announcements.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
