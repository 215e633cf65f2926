package handler

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/domain/repository"
	"flatmatch/internal/infrastructure/firebase"
	"flatmatch/pkg/errors"
	"flatmatch/pkg/response"
)

type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	userRepo     repository.UserRepository
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, userRepo)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// GenerateToken mints a long-lived token for a known user so manual API
// testing does not need the web client. Only mounted in development.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("uid query param is required", nil))
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	token, err := h.firebaseAuth.GenerateLongLivedToken(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
			"role":         user.Role,
		},
	})
}
