package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"koreatrip/auth"
	"koreatrip/domain"
)

// verifyUser resolves the caller identity from the Authorization header.
// It runs before any store or generation call on every protected operation.
func (h *Handler) verifyUser(c echo.Context) (string, error) {
	token, err := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return "", err
	}
	return h.verifier.Verify(c.Request().Context(), token)
}

// jsonError maps a taxonomy error onto its HTTP status and writes the
// structured error body. Unclassified errors count as internal.
func (h *Handler) jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInvalidArgument:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
