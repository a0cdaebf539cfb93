package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"forumflow/internal/auth"
	"forumflow/internal/repository"
	"forumflow/internal/service"
)

type CreatePostRequest struct {
	AuthorImage     string `json:"authorImage"`
	AuthorName      string `json:"authorName"`
	AuthorEmail     string `json:"authorEmail"`
	PostTitle       string `json:"postTitle" validate:"required"`
	PostDescription string `json:"postDescription" validate:"required"`
	Tag             string `json:"tag"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postId"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// listQuery parses the shared pagination/filter parameters with the
// documented defaults (page 1, limit 5, sort recent).
func listQuery(r *http.Request) repository.ListPostsQuery {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 5
	}

	sortMode := r.URL.Query().Get("sort")
	if sortMode != "popularity" {
		sortMode = "recent"
	}

	return repository.ListPostsQuery{
		Email: r.URL.Query().Get("email"),
		Tag:   r.URL.Query().Get("tag"),
		Sort:  sortMode,
		Page:  page,
		Limit: limit,
	}
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.PostService.ListPosts(r.Context(), listQuery(r))
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, page, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "postTitle and postDescription are required", http.StatusBadRequest)
		return
	}

	postID, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorImage:     req.AuthorImage,
		AuthorName:      req.AuthorName,
		AuthorEmail:     req.AuthorEmail,
		PostTitle:       req.PostTitle,
		PostDescription: req.PostDescription,
		Tag:             req.Tag,
	})
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, CreatePostResponse{Message: "Post created", PostID: postID}, http.StatusCreated)
}

func (h *Handlers) VotePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req struct {
		Type string `json:"type" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.VotePost(r.Context(), postID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVoteType):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			WriteServerError(w, h.Cfg, err)
		}
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CommentPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req struct {
		Comment  string `json:"comment"`
		UserID   string `json:"userId"`
		UserName string `json:"userName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authorID := req.UserID
	authorName := req.UserName

	// A verified identity on the request wins over client-supplied
	// attribution.
	if identity, ok := auth.IdentityFrom(r.Context()); ok {
		authorID = identity.UID
		if identity.Name != "" {
			authorName = identity.Name
		}
	}

	post, err := h.PostService.CommentPost(r.Context(), postID, req.Comment, authorID, authorName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Post not found", http.StatusNotFound)
		default:
			WriteServerError(w, h.Cfg, err)
		}
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req struct {
		PostTitle       string `json:"postTitle" validate:"required"`
		PostDescription string `json:"postDescription" validate:"required"`
		Tag             string `json:"tag"`
		AuthorImage     string `json:"authorImage"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "postTitle and postDescription are required", http.StatusBadRequest)
		return
	}

	err := h.PostService.UpdatePost(r.Context(), postID, repository.UpdatePostRequest{
		PostTitle:       req.PostTitle,
		PostDescription: req.PostDescription,
		Tag:             req.Tag,
		AuthorImage:     req.AuthorImage,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post updated"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

func (h *Handlers) CountPosts(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	count, err := h.PostService.CountByAuthor(r.Context(), email)
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, CountResponse{Count: count}, http.StatusOK)
}

func (h *Handlers) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	stats, err := h.PostService.GetDashboardStats(r.Context(), email)
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
