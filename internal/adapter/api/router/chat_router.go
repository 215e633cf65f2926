package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
	"flatmatch/internal/adapter/api/middleware"
)

// SetupChatRouter wires the REST chat endpoints. The live stream has its own
// websocket route.
func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.POST("", chatHandler.StartChat)
	chatGroup.GET("", chatHandler.ListThreads)
	chatGroup.GET("/:id", chatHandler.GetThread)
	chatGroup.GET("/:id/messages", chatHandler.ListMessages)
	chatGroup.POST("/:id/messages", chatHandler.SendMessage)
}
