package handler

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"flatmatch/internal/infrastructure/storage"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
	"flatmatch/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

var fileHandler *FileHandler

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxFileSize:   5 * 1024 * 1024,
	}
}

func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadProfilePhoto stores a profile picture and returns its public URL.
// The client then writes that URL into the profile via the profile endpoints.
func (h *FileHandler) UploadProfilePhoto(c echo.Context) error {
	uid := c.Get("uid").(string)

	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("Photo too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		logger.Warn("Rejected upload with content type %s", contentType)
		return response.Error(c, errors.BadRequest("Only image uploads are supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadProfilePhoto(c.Request().Context(), uid, file.Filename, contentType, src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
