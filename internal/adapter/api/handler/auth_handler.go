package handler

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/usecase"
	"flatmatch/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type syncUserRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// SyncUser mirrors the Firebase account into the user collection. The client
// calls this once after sign-in; repeated calls refresh the display name.
func (h *AuthHandler) SyncUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req syncUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.SyncUser(c.Request().Context(), uid, usecase.SyncUserInput{
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
