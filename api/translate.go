package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"koreatrip/domain"
	"koreatrip/prompt"
)

// Translate translates a single text via the generation backend.
// POST /api/v1/translate
func (h *Handler) Translate(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.TranslationRequest
	if err := c.Bind(&req); err != nil {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "invalid request body"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "text is required"))
	}
	if req.TargetLang == "" {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "target_lang is required"))
	}
	if req.SourceLang == "" {
		req.SourceLang = "auto"
	}

	translated, err := h.generator.Generate(ctx, prompt.Translation(req))
	if err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "translation error"))
	}

	return c.JSON(http.StatusOK, domain.TranslationResponse{
		OriginalText:   req.Text,
		TranslatedText: translated,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
	})
}
