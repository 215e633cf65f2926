package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/middleware"
	ws "flatmatch/internal/infrastructure/websocket"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	authMiddleware *middleware.AuthMiddleware
}

var websocketHandler *WebSocketHandler

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the web client origin before launch
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		authMiddleware: authMiddleware,
	}
}

func SetupWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware) {
	websocketHandler = NewWebSocketHandler(wsManager, authMiddleware)
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}

// HandleWebSocket upgrades the connection and hands the client to the
// manager. Browsers cannot set an Authorization header on the websocket
// handshake, so the ID token arrives as a query param instead.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication token required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	logger.Debug("Websocket connected for user %s", userID)

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
