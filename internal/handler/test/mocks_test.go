package test

import (
	"context"
	"io"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"forumflow/internal/auth"
	"forumflow/internal/models"
	"forumflow/internal/repository"
	"forumflow/internal/service"
)

func httptestRouter() *mux.Router {
	return mux.NewRouter()
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, query repository.ListPostsQuery) (*service.PostPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostPage), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) VotePost(ctx context.Context, postID, voteType string) (*models.Post, error) {
	args := m.Called(ctx, postID, voteType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CommentPost(ctx context.Context, postID, text, authorID, authorName string) (*models.Post, error) {
	args := m.Called(ctx, postID, text, authorID, authorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID string, req repository.UpdatePostRequest) error {
	args := m.Called(ctx, postID, req)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) CountByAuthor(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) GetDashboardStats(ctx context.Context, email string) (*service.DashboardStats, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardStats), args.Error(1)
}

func (m *MockPostService) GetTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SyncUser(ctx context.Context, identity auth.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockUserService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) MakeAdmin(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockUserService) SetMembership(ctx context.Context, uid, membership string) error {
	args := m.Called(ctx, uid, membership)
	return args.Error(0)
}

type MockAnnouncementService struct {
	mock.Mock
}

func (m *MockAnnouncementService) CreateAnnouncement(ctx context.Context, req service.CreateAnnouncementRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAnnouncementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (m *MockAnnouncementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	args := m.Called(ctx, announcementID)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CreateReport(ctx context.Context, reporter auth.Identity, req service.CreateReportRequest) (string, error) {
	args := m.Called(ctx, reporter, req)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportService) ApplyAction(ctx context.Context, reportID, action string) (*models.Report, error) {
	args := m.Called(ctx, reportID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}
