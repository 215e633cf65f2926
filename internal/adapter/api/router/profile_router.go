package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
	"flatmatch/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	profileHandler := handler.GetProfileHandler()

	seekerGroup := e.Group("/v1/profiles/seekers")
	seekerGroup.Use(authMiddleware.Authenticate)

	seekerGroup.POST("", profileHandler.CreateSeeker)
	seekerGroup.GET("", profileHandler.ListSeekers)
	seekerGroup.GET("/:id", profileHandler.GetSeeker)
	seekerGroup.PUT("/:id", profileHandler.UpdateSeeker)
	seekerGroup.DELETE("/:id", profileHandler.DeleteSeeker)

	roomGroup := e.Group("/v1/profiles/rooms")
	roomGroup.Use(authMiddleware.Authenticate)

	roomGroup.POST("", profileHandler.CreateRoom)
	roomGroup.GET("", profileHandler.ListRooms)
	roomGroup.GET("/:id", profileHandler.GetRoom)
	roomGroup.PUT("/:id", profileHandler.UpdateRoom)
	roomGroup.DELETE("/:id", profileHandler.DeleteRoom)

	// Moderation deletes go through the same handlers; the use case layer
	// allows any profile for the admin role.
	adminGroup := e.Group("/v1/admin/profiles")
	adminGroup.Use(authMiddleware.Authenticate)
	adminGroup.Use(adminMiddleware.AdminOnly)

	adminGroup.DELETE("/seekers/:id", profileHandler.DeleteSeeker)
	adminGroup.DELETE("/rooms/:id", profileHandler.DeleteRoom)
}
