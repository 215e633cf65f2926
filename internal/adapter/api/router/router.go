package router

import (
	"flatmatch/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware, adminMiddleware)
	SetupMatchRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
