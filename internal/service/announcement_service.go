package service

import (
	"context"

	"forumflow/internal/models"
	"forumflow/internal/repository"
)

type CreateAnnouncementRequest struct {
	AuthorName  string
	AuthorImage string
	Title       string
	Description string
}

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (string, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (string, error) {
	announcement := &models.Announcement{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
	}

	return s.announcementRepo.Create(ctx, announcement)
}

func (s *announcementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	return s.announcementRepo.Delete(ctx, announcementID)
}
