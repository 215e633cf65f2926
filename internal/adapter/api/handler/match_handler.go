package handler

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/usecase"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/response"
)

type MatchHandler struct {
	matchUseCase *usecase.MatchUseCase
}

func NewMatchHandler(matchUseCase *usecase.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetRankings recomputes both ranking directions from the current profile
// snapshot. Nothing is cached, so an edited profile is reflected on the
// next call.
func (h *MatchHandler) GetRankings(c echo.Context) error {
	uid := c.Get("uid").(string)

	rankings, err := h.matchUseCase.GetRankings(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rankings)
}

func (h *MatchHandler) GetMatchesForSeeker(c echo.Context) error {
	uid := c.Get("uid").(string)

	matches, err := h.matchUseCase.GetMatchesForSeeker(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}

func (h *MatchHandler) GetMatchesForRoom(c echo.Context) error {
	uid := c.Get("uid").(string)

	matches, err := h.matchUseCase.GetMatchesForRoom(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}

// ScorePair returns the full per-criterion breakdown for one seeker and one
// room, used by the match detail view.
func (h *MatchHandler) ScorePair(c echo.Context) error {
	seekerID := c.QueryParam("seeker_id")
	roomID := c.QueryParam("room_id")
	if seekerID == "" || roomID == "" {
		return response.Error(c, errors.BadRequest("seeker_id and room_id are required", nil))
	}

	result, err := h.matchUseCase.ScorePair(c.Request().Context(), seekerID, roomID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
