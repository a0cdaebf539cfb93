package handlers

import (
	"fmt"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Hello from ForumFlow!")
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
	}

	WriteJSON(w, response, http.StatusOK)
}

// NotFound answers every unmatched route.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, ErrorResponse{
		Error:  "Route not found",
		Path:   r.URL.Path,
		Method: r.Method,
	}, http.StatusNotFound)
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, ErrorResponse{
		Error:  "Method not allowed",
		Path:   r.URL.Path,
		Method: r.Method,
	}, http.StatusMethodNotAllowed)
}
