package service

import (
	"forumflow/internal/config"
	"forumflow/internal/repository"
)

type Service struct {
	Post         PostService
	User         UserService
	Announcement AnnouncementService
	Report       ReportService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Post:         NewPostService(rep.Post),
		User:         NewUserService(rep.User),
		Announcement: NewAnnouncementService(rep.Announcement),
		Report:       NewReportService(rep.Report),
	}
}
