package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type ChatHandler struct {
	service service.ChatService
}

type chatRequest struct {
	Message  string `json:"message" validate:"notblank"`
	Context  string `json:"context"`
	Language string `json:"language"`
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}

// Chat answers a message through the Lingua assistant.
// @Summary Chat with the assistant
// @Description Send a message, optionally with the latest translation as context. Returns the reply and three follow-up suggestions.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body chatRequest true "Chat request; language defaults to en"
// @Success 200 {object} service.ChatResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return writeServiceError(c, err)
	}
	if req.Language == "" {
		req.Language = "en"
	}

	result, err := h.service.Chat(c.Request().Context(), service.ChatInput{
		Message:  req.Message,
		Context:  req.Context,
		Language: req.Language,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
