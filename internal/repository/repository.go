package repository

import (
	"context"
	"errors"

	"forumflow/internal/database"
	"forumflow/internal/models"
)

// ErrNotFound is returned when the referenced document does not exist.
// Handlers map it to a 404 response.
var ErrNotFound = errors.New("document not found")

type ListPostsQuery struct {
	Email string
	Tag   string
	Sort  string
	Page  int
	Limit int
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (string, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, query ListPostsQuery) ([]models.Post, int64, error)
	IncrementVote(ctx context.Context, postID, field string) (*models.Post, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) (*models.Post, error)
	Update(ctx context.Context, postID string, req UpdatePostRequest) error
	Delete(ctx context.Context, postID string) error
	CountByAuthor(ctx context.Context, email, status string) (int64, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, uid, email, name string) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, uid, role string) error
	SetMembership(ctx context.Context, uid, membership string) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) (string, error)
	List(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, announcementID string) error
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) (string, error)
	List(ctx context.Context) ([]models.Report, error)
	ApplyAction(ctx context.Context, reportID string, action models.ReportAction, status string) (*models.Report, error)
}

type Repository struct {
	Post         PostRepository
	User         UserRepository
	Announcement AnnouncementRepository
	Report       ReportRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		Post:         NewPostRepository(db),
		User:         NewUserRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Report:       NewReportRepository(db),
	}
}
