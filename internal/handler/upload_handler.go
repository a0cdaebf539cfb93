package handlers

import (
	"errors"
	"fmt"
	"net/http"
)

type UploadResponse struct {
	URL string `json:"url"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadImage accepts a multipart image and returns its public URL.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm only caps memory buffering; the reader caps
	// the request body itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to parse upload", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	url, err := h.Storage.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteServerError(w, h.Cfg, err)
		return
	}

	WriteJSON(w, UploadResponse{URL: url}, http.StatusCreated)
}
