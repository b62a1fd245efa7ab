package api

import (
	"errors"
	"net/http"

	"stockpot/internal/detect"
	"stockpot/internal/imaging"
)

// maxUploadBytes caps photo uploads at 10 MB.
const maxUploadBytes = 10 << 20

// DetectHandler forwards photos to the external detection service for
// photo-assisted item entry.
type DetectHandler struct {
	Client *detect.Client
}

// Detect handles POST /api/detect.
func (h *DetectHandler) Detect(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		jsonError(w, http.StatusServiceUnavailable, "photo detection is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	// Downscale and re-encode before forwarding; the detection service
	// caps its input size and has no use for full-resolution photos.
	prepared, err := imaging.Prepare(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Client.Detect(r.Context(), prepared.Data, header.Filename)
	if err != nil {
		if errors.Is(err, detect.ErrUnavailable) {
			jsonError(w, http.StatusServiceUnavailable, "detection service unavailable")
			return
		}
		jsonError(w, http.StatusBadGateway, "detection failed")
		return
	}

	jsonResponse(w, http.StatusOK, result)
}
