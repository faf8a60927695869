package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"koreatrip/domain"
	"koreatrip/prompt"
)

// AIGuide answers a free-form travel question. The generated narrative is
// returned as-is; recommendations stay empty because the model output is
// not parsed into structured items.
// POST /api/v1/ai-guide
func (h *Handler) AIGuide(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.AIGuideRequest
	if err := c.Bind(&req); err != nil {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "invalid request body"))
	}
	if strings.TrimSpace(req.Query) == "" {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "query is required"))
	}
	if req.Language == "" {
		req.Language = "en"
	}

	guideText, err := h.generator.Generate(ctx, prompt.Guide(req))
	if err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "AI guide error"))
	}

	return c.JSON(http.StatusOK, domain.AIGuideResponse{
		Query:           req.Query,
		Response:        guideText,
		Recommendations: []domain.Recommendation{},
		Language:        req.Language,
		GeneratedAt:     time.Now().UTC(),
	})
}

// Recommendations requests category/location suggestions. The generation
// call is made so that backend failures surface, but the free-text result
// is discarded and the structured list is always empty.
// GET /api/v1/recommendations/:category/:location
func (h *Handler) Recommendations(c echo.Context) error {
	ctx := c.Request().Context()

	category := c.Param("category")
	location := c.Param("location")
	language := c.QueryParam("language")
	if language == "" {
		language = "en"
	}

	if _, err := h.generator.Generate(ctx, prompt.Recommendations(category, location, language)); err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "recommendations error"))
	}

	return c.JSON(http.StatusOK, []domain.Recommendation{})
}
