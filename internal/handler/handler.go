package handlers

import (
	"github.com/go-playground/validator/v10"

	"forumflow/internal/config"
	"forumflow/internal/database"
	"forumflow/internal/service"
	"forumflow/internal/storage"
)

type Handlers struct {
	PostService         service.PostService
	UserService         service.UserService
	AnnouncementService service.AnnouncementService
	ReportService       service.ReportService
	Storage             storage.Storage
	DB                  *database.DB
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, store storage.Storage, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		PostService:         services.Post,
		UserService:         services.User,
		AnnouncementService: services.Announcement,
		ReportService:       services.Report,
		Storage:             store,
		DB:                  db,
		Cfg:                 cfg,
		Validate:            validator.New(),
	}
}
