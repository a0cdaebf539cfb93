package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"forumflow/internal/auth"
	"forumflow/internal/repository"
)

type CurrentUserResponse struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LastLogin string `json:"lastLogin"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, CurrentUserResponse{
		UID:       user.UID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		LastLogin: user.LastLogin.UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	if err := h.UserService.MakeAdmin(r.Context(), uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "User promoted to admin"}, http.StatusOK)
}

func (h *Handlers) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	var req struct {
		Membership string `json:"membership" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "membership is required", http.StatusBadRequest)
		return
	}

	if err := h.UserService.SetMembership(r.Context(), uid, req.Membership); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
			return
		}
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Membership updated"}, http.StatusOK)
}
