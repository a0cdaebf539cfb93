package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"forumflow/internal/repository"
	"forumflow/internal/service"
)

type CreateAnnouncementRequest struct {
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateAnnouncementResponse struct {
	Message        string `json:"message"`
	AnnouncementID string `json:"announcementId"`
}

func (h *Handlers) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.AnnouncementService.ListAnnouncements(r.Context())
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, announcements, http.StatusOK)
}

func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title and description are required", http.StatusBadRequest)
		return
	}

	announcementID, err := h.AnnouncementService.CreateAnnouncement(r.Context(), service.CreateAnnouncementRequest{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, CreateAnnouncementResponse{
		Message:        "Announcement created",
		AnnouncementID: announcementID,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcementID := mux.Vars(r)["id"]

	if err := h.AnnouncementService.DeleteAnnouncement(r.Context(), announcementID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Announcement not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Announcement deleted"}, http.StatusOK)
}
