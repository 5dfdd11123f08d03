package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"showbook/internal/interfaces"
)

// MaxImageSize bounds a single upload.
const MaxImageSize = 10 << 20

type ImageHandler struct {
	store interfaces.ImageStore
}

// NewImageHandler accepts a nil store; uploads then answer 503.
func NewImageHandler(store interfaces.ImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

// @Tags Images
// @Summary Upload a venue or artist image
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/images [post]
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "unavailable", "Image uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize+(1<<20))
	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "invalid_request", "Image must be 10MB or smaller")
			return
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Form field 'file' is required")
		return
	}
	defer file.Close()

	if header.Size > MaxImageSize {
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "invalid_request", "Image must be 10MB or smaller")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Only image uploads are accepted")
		return
	}

	url, err := h.store.Put(r.Context(), header.Filename, contentType, file)
	if err != nil {
		logrus.WithError(err).WithField("filename", header.Filename).Error("image upload failed")
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to upload image")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"url": url})
}
