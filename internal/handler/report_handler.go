package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"forumflow/internal/auth"
	"forumflow/internal/repository"
	"forumflow/internal/service"
)

type CreateReportRequest struct {
	ReportedUserUID   string `json:"reportedUserUid" validate:"required"`
	ReportedUserEmail string `json:"reportedUserEmail" validate:"required"`
	ContentID         string `json:"contentId" validate:"required"`
	ContentSnippet    string `json:"contentSnippet"`
	Reason            string `json:"reason" validate:"required"`
}

type CreateReportResponse struct {
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}

func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "reportedUserUid, reportedUserEmail, contentId and reason are required", http.StatusBadRequest)
		return
	}

	reportID, err := h.ReportService.CreateReport(r.Context(), identity, service.CreateReportRequest{
		ReportedUserUID:   req.ReportedUserUID,
		ReportedUserEmail: req.ReportedUserEmail,
		ContentID:         req.ContentID,
		ContentSnippet:    req.ContentSnippet,
		Reason:            req.Reason,
	})
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, CreateReportResponse{Message: "Report filed", ReportID: reportID}, http.StatusCreated)
}

func (h *Handlers) GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.ListReports(r.Context())
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, reports, http.StatusOK)
}

func (h *Handlers) ApplyReportAction(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	var req struct {
		Action string `json:"action" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.ReportService.ApplyAction(r.Context(), reportID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Report not found", http.StatusNotFound)
		default:
			WriteServerError(w, h.Cfg, err)
		}
		return
	}

	WriteJSON(w, report, http.StatusOK)
}
