package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forumflow/internal/database"
	"forumflow/internal/models"
)

type reportRepository struct {
	reports *mongo.Collection
}

func NewReportRepository(db *database.DB) ReportRepository {
	return &reportRepository{reports: db.Collection(database.ReportsCollection)}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) (string, error) {
	report.ID = primitive.NewObjectID()
	report.Status = models.ReportPending
	report.Actions = []models.ReportAction{}
	report.CreatedAt = time.Now().UTC()

	result, err := r.reports.InsertOne(ctx, report)
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *reportRepository) List(ctx context.Context) ([]models.Report, error) {
	cursor, err := r.reports.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}

	return reports, nil
}

// ApplyAction appends one action record and sets the recomputed status
// in a single document update.
func (r *reportRepository) ApplyAction(ctx context.Context, reportID string, action models.ReportAction, status string) (*models.Report, error) {
	objectID, err := parseObjectID(reportID)
	if err != nil {
		return nil, err
	}

	var report models.Report
	err = r.reports.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{"actions": action},
			"$set":  bson.M{"status": status},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply report action: %w", err)
	}

	return &report, nil
}
