package handler

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"phonedeck/internal/infrastructure/storage"
	"phonedeck/pkg/errors"
	"phonedeck/pkg/logger"
	"phonedeck/pkg/response"
)

type UploadHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

var uploadHandler *UploadHandler

func NewUploadHandler(storageClient *storage.CloudStorageClient) *UploadHandler {
	return &UploadHandler{
		storageClient: storageClient,
		maxFileSize:   5 * 1024 * 1024,
	}
}

func SetupUploadHandler(storageClient *storage.CloudStorageClient) {
	uploadHandler = NewUploadHandler(storageClient)
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// UploadImage stores a cover image and returns its public URL for the phone
// or blog image fields.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.Error(c, errors.BadRequest("Only image uploads are supported", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "covers"
	} else {
		folder = sanitizeFolderName(folder)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType, folder)
	if err != nil {
		logger.Error("Image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

func sanitizeFolderName(folder string) string {
	folder = strings.ToLower(folder)
	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "covers"
	}
	return b.String()
}
