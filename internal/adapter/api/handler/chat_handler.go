package handler

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/domain/entity"
	"flatmatch/internal/usecase"
	"flatmatch/pkg/response"
	"flatmatch/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type startChatRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	ProfileID   string `json:"profile_id"`
	ProfileName string `json:"profile_name" validate:"omitempty,max=100"`
	ProfileType string `json:"profile_type" validate:"omitempty,oneof=seeker room"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

// StartChat resolves the thread for the caller and the recipient. Calling it
// again for the same pair returns the existing thread with created=false.
func (h *ChatHandler) StartChat(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req startChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.chatUseCase.StartChat(c.Request().Context(), uid, usecase.StartChatInput{
		RecipientID: req.RecipientID,
		ProfileID:   req.ProfileID,
		ProfileName: req.ProfileName,
		ProfileType: req.ProfileType,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if result.Created {
		return response.Created(c, result)
	}
	return response.Success(c, result)
}

func (h *ChatHandler) ListThreads(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	threads, err := h.chatUseCase.ListThreads(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	total := len(threads)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, threads[start:end], int64(total), params.Page, params.PageSize)
}

func (h *ChatHandler) GetThread(c echo.Context) error {
	uid := c.Get("uid").(string)

	thread, err := h.chatUseCase.GetThread(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, thread)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"), entity.MaxStreamedMessages)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

// SendMessage is the REST fallback for clients without a live socket. Blank
// text is accepted and dropped, matching the socket behavior.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	if message == nil {
		return response.Success(c, map[string]string{
			"message": "Empty message ignored",
		})
	}

	return response.Created(c, message)
}
