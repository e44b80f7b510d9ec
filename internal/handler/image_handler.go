package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"billboard/internal/service"
)

// ImageHandler handles image uploads.
type ImageHandler struct {
	imageService service.ImageServiceInterface
	maxBytes     int64
}

// NewImageHandler creates a new ImageHandler. maxBytes bounds the uploaded file size.
func NewImageHandler(imageService service.ImageServiceInterface, maxBytes int64) *ImageHandler {
	return &ImageHandler{imageService: imageService, maxBytes: maxBytes}
}

// ImageUploadResponse is the body of a successful upload.
type ImageUploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/v1/images
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, "file", "file_too_large")
			return
		}
		badRequest(c, "file", "file_required")
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the service to reject the file.
	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		badRequest(c, "file", "file_unreadable")
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ImageUploadResponse{URL: url})
}
