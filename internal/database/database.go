package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"forumflow/internal/config"
)

// Collection names used across the repositories.
const (
	PostsCollection         = "posts"
	UsersCollection         = "users"
	AnnouncementsCollection = "announcements"
	ReportsCollection       = "reports"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// BuildURI assembles the connection string from credentials, cluster
// host and database name. Credentials are optional for local instances.
func BuildURI(cfg *config.Config) string {
	if cfg.Mongo.User == "" {
		return fmt.Sprintf("mongodb://%s/%s", cfg.Mongo.Cluster, cfg.Mongo.DbNAME)
	}

	scheme := "mongodb"
	if strings.Contains(cfg.Mongo.Cluster, ".mongodb.net") {
		scheme = "mongodb+srv"
	}

	return fmt.Sprintf("%s://%s:%s@%s/%s?retryWrites=true&w=majority",
		scheme,
		url.QueryEscape(cfg.Mongo.User),
		url.QueryEscape(cfg.Mongo.Password),
		cfg.Mongo.Cluster,
		cfg.Mongo.DbNAME,
	)
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	uri := BuildURI(cfg)

	log.Printf("Connecting to MongoDB: cluster=%s, db=%s", cfg.Mongo.Cluster, cfg.Mongo.DbNAME)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Reachability ping. The caller treats a failure here as fatal.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	log.Println("Connected to MongoDB")

	return &DB{
		client: client,
		db:     client.Database(cfg.Mongo.DbNAME),
	}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) HealthCheck(ctx context.Context) error {
	if d == nil || d.client == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) CloseDB(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
