package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
	"flatmatch/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	fileGroup := e.Group("/v1/files")
	fileGroup.Use(authMiddleware.Authenticate)

	fileGroup.POST("/profile-photo", fileHandler.UploadProfilePhoto)
}
