package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"forumflow/internal/repository"
)

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.PostService.GetTags(r.Context())
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, tags, http.StatusOK)
}

// GetPostsByTag reuses the post listing contract filtered to one exact
// tag value.
func (h *Handlers) GetPostsByTag(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 5
	}

	result, err := h.PostService.ListPosts(r.Context(), repository.ListPostsQuery{
		Tag:   tag,
		Sort:  "recent",
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}
