package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type GrammarHandler struct {
	service service.GrammarService
}

type grammarRequest struct {
	Word     string `json:"word" validate:"notblank"`
	Language string `json:"language"`
}

// grammarResponse documents the analysis shape.
type grammarResponse struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Examples     []string `json:"examples"`
	Usage        string   `json:"usage"`
	Related      []string `json:"related"`
}

func NewGrammarHandler(service service.GrammarService) *GrammarHandler {
	return &GrammarHandler{service: service}
}

func (h *GrammarHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/grammar", h.Analyze)
}

// Analyze explains a word or phrase.
// @Summary Grammar analysis
// @Description Get the definition, part of speech, examples, usage notes and related words for a word or phrase
// @Tags grammar
// @Accept json
// @Produce json
// @Param request body grammarRequest true "Grammar request; language defaults to en"
// @Success 200 {object} grammarResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /grammar [post]
func (h *GrammarHandler) Analyze(c echo.Context) error {
	var req grammarRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return writeServiceError(c, err)
	}

	analysis, err := h.service.Analyze(c.Request().Context(), service.GrammarInput{
		Word:     req.Word,
		Language: req.Language,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, analysis)
}
