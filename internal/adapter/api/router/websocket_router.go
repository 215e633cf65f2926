package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
)

// SetupWebSocketRouter mounts the live chat socket. Auth happens inside the
// handler because the handshake carries the token as a query param.
func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()
	e.GET("/ws", wsHandler.HandleWebSocket)
}
