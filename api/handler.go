// Package api provides the HTTP handlers for the trip planner backend.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"koreatrip/auth"
	"koreatrip/config"
	"koreatrip/store"
)

// Version is the reported application version.
const Version = "0.1.0"

// TextGenerator is the generation backend the handlers depend on: one
// prompt in, one trimmed text result out. The interface lives here, on the
// consumer side, so tests can inject a fake without a Gemini credential.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler handles HTTP requests.
type Handler struct {
	store     store.TripStore
	verifier  auth.Verifier
	generator TextGenerator
	config    *config.Config
	logger    *zap.Logger
}

// NewHandler creates a new handler.
func NewHandler(store store.TripStore, verifier auth.Verifier, generator TextGenerator, config *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		store:     store,
		verifier:  verifier,
		generator: generator,
		config:    config,
		logger:    logger,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	prefix := "/api/" + h.config.APIVersion

	// Translation and AI guidance
	e.POST(prefix+"/translate", h.Translate)
	e.POST(prefix+"/ai-guide", h.AIGuide)
	e.GET(prefix+"/recommendations/:category/:location", h.Recommendations)

	// Trips (auth required)
	e.POST(prefix+"/trips", h.CreateTrip)
	e.GET(prefix+"/trips", h.ListTrips)
	e.GET(prefix+"/trips/participant/me", h.ListParticipantTrips)
	e.GET(prefix+"/trips/:trip_id", h.GetTrip)
	e.PUT(prefix+"/trips/:trip_id", h.UpdateTrip)
	e.DELETE(prefix+"/trips/:trip_id", h.DeleteTrip)

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

// Root returns the welcome body.
// GET /
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Korea Trip Planner API",
		"version": Version,
		"docs":    "/docs",
	})
}

// Health reports whether the store handle initialized and whether a
// generation credential is configured. Neither check is a liveness probe.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"firebase": h.store != nil,
		"gemini":   h.config.GeminiAPIKey != "",
	})
}
