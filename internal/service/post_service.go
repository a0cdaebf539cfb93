package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"forumflow/internal/models"
	"forumflow/internal/repository"
)

var (
	// ErrInvalidVoteType means the vote type was not upvote/downvote.
	ErrInvalidVoteType = errors.New("vote type must be upvote or downvote")

	// ErrEmptyComment means the comment text was empty after trimming.
	ErrEmptyComment = errors.New("comment text must not be empty")
)

type PostPage struct {
	Posts []models.Post `json:"posts"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

type DashboardStats struct {
	TotalPosts     int64 `json:"totalPosts"`
	PublishedPosts int64 `json:"publishedPosts"`
	DraftPosts     int64 `json:"draftPosts"`
}

type CreatePostRequest struct {
	AuthorImage     string
	AuthorName      string
	AuthorEmail     string
	PostTitle       string
	PostDescription string
	Tag             string
}

type PostService interface {
	ListPosts(ctx context.Context, query repository.ListPostsQuery) (*PostPage, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (string, error)
	VotePost(ctx context.Context, postID, voteType string) (*models.Post, error)
	CommentPost(ctx context.Context, postID, text, authorID, authorName string) (*models.Post, error)
	UpdatePost(ctx context.Context, postID string, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID string) error
	CountByAuthor(ctx context.Context, email string) (int64, error)
	GetDashboardStats(ctx context.Context, email string) (*DashboardStats, error)
	GetTags(ctx context.Context) ([]string, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) ListPosts(ctx context.Context, query repository.ListPostsQuery) (*PostPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 5
	}

	posts, total, err := p.postRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].CommentCount = len(posts[i].Comments)
	}

	return &PostPage{
		Posts: posts,
		Total: total,
		Page:  query.Page,
		Pages: int((total + int64(query.Limit) - 1) / int64(query.Limit)),
	}, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.CommentCount = len(post.Comments)
	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (string, error) {
	post := &models.Post{
		AuthorImage:     req.AuthorImage,
		AuthorName:      req.AuthorName,
		AuthorEmail:     req.AuthorEmail,
		PostTitle:       req.PostTitle,
		PostDescription: req.PostDescription,
		Tag:             req.Tag,
	}

	return p.postRepo.Create(ctx, post)
}

// VotePost increments one vote counter by exactly one. Repeat votes
// from the same identity are not de-duplicated.
func (p *postService) VotePost(ctx context.Context, postID, voteType string) (*models.Post, error) {
	var field string
	switch voteType {
	case "upvote":
		field = repository.UpVoteField
	case "downvote":
		field = repository.DownVoteField
	default:
		return nil, ErrInvalidVoteType
	}

	post, err := p.postRepo.IncrementVote(ctx, postID, field)
	if err != nil {
		return nil, err
	}

	post.CommentCount = len(post.Comments)
	return post, nil
}

func (p *postService) CommentPost(ctx context.Context, postID, text, authorID, authorName string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		Text:       text,
		AuthorID:   authorID,
		AuthorName: authorName,
		CreatedAt:  time.Now().UTC(),
	}

	post, err := p.postRepo.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	post.CommentCount = len(post.Comments)
	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID string, req repository.UpdatePostRequest) error {
	return p.postRepo.Update(ctx, postID, req)
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) CountByAuthor(ctx context.Context, email string) (int64, error) {
	return p.postRepo.CountByAuthor(ctx, email, "")
}

// GetDashboardStats returns per-author post counts. The published and
// draft counts are zero for posts that never carried a status field.
func (p *postService) GetDashboardStats(ctx context.Context, email string) (*DashboardStats, error) {
	total, err := p.postRepo.CountByAuthor(ctx, email, "")
	if err != nil {
		return nil, err
	}

	published, err := p.postRepo.CountByAuthor(ctx, email, models.StatusPublished)
	if err != nil {
		return nil, err
	}

	drafts, err := p.postRepo.CountByAuthor(ctx, email, models.StatusDraft)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalPosts:     total,
		PublishedPosts: published,
		DraftPosts:     drafts,
	}, nil
}

func (p *postService) GetTags(ctx context.Context) ([]string, error) {
	return p.postRepo.DistinctTags(ctx)
}
