package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
	"flatmatch/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	authGroup := e.Group("/v1/auth")
	authGroup.Use(authMiddleware.Authenticate)

	authGroup.POST("/sync", authHandler.SyncUser)
	authGroup.GET("/me", authHandler.Me)
}
