package router

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/adapter/api/handler"
	"flatmatch/internal/adapter/api/middleware"
)

func SetupMatchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchHandler := handler.GetMatchHandler()

	matchGroup := e.Group("/v1/matches")
	matchGroup.Use(authMiddleware.Authenticate)

	matchGroup.GET("", matchHandler.GetRankings)
	matchGroup.GET("/seekers/:id", matchHandler.GetMatchesForSeeker)
	matchGroup.GET("/rooms/:id", matchHandler.GetMatchesForRoom)
	matchGroup.GET("/score", matchHandler.ScorePair)
}
