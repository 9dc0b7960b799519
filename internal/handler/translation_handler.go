package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Q      string `json:"q" validate:"notblank"`
	Source string `json:"source"`
	Target string `json:"target"`
	UILang string `json:"ui_lang"`
}

type historyItemResponse struct {
	ID             int64                `json:"id"`
	SourceLang     string               `json:"sourceLang"`
	TargetLang     string               `json:"targetLang"`
	SourceText     string               `json:"sourceText"`
	TranslatedText *string              `json:"translatedText"`
	CulturalNotes  []model.CulturalNote `json:"culturalNotes"`
	Timestamp      string               `json:"timestamp"`
}

type historyResponse struct {
	History []historyItemResponse `json:"history"`
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/history", h.History)
}

// Translate translates text and attaches cultural notes.
// @Summary Translate text
// @Description Translate text with cultural notes written in the interface language. The result is saved to history.
// @Tags translation
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translation request; source defaults to auto, target and ui_lang to en"
// @Success 200 {object} service.TranslateResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return writeServiceError(c, err)
	}

	result, err := h.service.Translate(c.Request().Context(), service.TranslateInput{
		Text:   req.Q,
		Source: req.Source,
		Target: req.Target,
		UILang: req.UILang,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// History returns the most recent translations.
// @Summary Translation history
// @Description Get the 50 most recent translations, newest first
// @Tags translation
// @Produce json
// @Success 200 {object} historyResponse
// @Failure 500 {object} errorResponse
// @Router /history [get]
func (h *TranslationHandler) History(c echo.Context) error {
	translations, err := h.service.History(c.Request().Context(), repository.DefaultHistoryLimit)
	if err != nil {
		return writeServiceError(c, err)
	}

	items := make([]historyItemResponse, 0, len(translations))
	for _, t := range translations {
		items = append(items, toHistoryItemResponse(t))
	}
	return c.JSON(http.StatusOK, historyResponse{History: items})
}

func toHistoryItemResponse(t model.Translation) historyItemResponse {
	notes := t.CulturalNotes
	if notes == nil {
		notes = []model.CulturalNote{}
	}
	return historyItemResponse{
		ID:             t.ID,
		SourceLang:     t.SourceLang,
		TargetLang:     t.TargetLang,
		SourceText:     t.SourceText,
		TranslatedText: t.TranslatedText,
		CulturalNotes:  notes,
		Timestamp:      t.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
