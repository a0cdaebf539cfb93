package app

import (
	"context"
	"log"

	"forumflow/internal/auth"
	"forumflow/internal/config"
	"forumflow/internal/database"
	"forumflow/internal/repository"
	"forumflow/internal/service"
	"forumflow/internal/storage"
)

// App wires the external collaborators and the layers on top of them.
// Any infrastructure failure here is fatal: the service does not run
// in a partial mode.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, auth.TokenVerifier, storage.Storage) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	verifier, err := auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("Failed to initialize the identity verifier: %v", err)
	}

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db)
	services := service.NewService(repo, cfg)

	return db, repo, services, verifier, store
}
