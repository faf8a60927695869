package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"koreatrip/domain"
)

// CreateTrip creates a new trip owned by the authenticated caller.
// POST /api/v1/trips
func (h *Handler) CreateTrip(c echo.Context) error {
	uid, err := h.verifyUser(c)
	if err != nil {
		return h.jsonError(c, err)
	}
	ctx := c.Request().Context()

	var req domain.TripCreate
	if err := c.Bind(&req); err != nil {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "invalid request body"))
	}
	if err := validateTitle(req.Title); err != nil {
		return h.jsonError(c, err)
	}

	trip := &domain.Trip{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Destinations: req.Destinations,
		Participants: req.Participants,
		// The verified identity becomes the owner; any client-submitted
		// created_by value is discarded.
		CreatedBy: uid,
	}
	if trip.Destinations == nil {
		trip.Destinations = []string{}
	}
	if trip.Participants == nil {
		trip.Participants = []string{}
	}

	id, err := h.store.CreateTrip(ctx, trip)
	if err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "error creating trip"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"id":      id,
		"message": "Trip created successfully",
	})
}

// GetTrip returns a trip by id. Any verified identity may read any trip;
// ownership is not checked on read.
// GET /api/v1/trips/:trip_id
func (h *Handler) GetTrip(c echo.Context) error {
	if _, err := h.verifyUser(c); err != nil {
		return h.jsonError(c, err)
	}

	trip, err := h.store.GetTrip(c.Request().Context(), c.Param("trip_id"))
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return h.jsonError(c, err)
		}
		return h.jsonError(c, domain.WrapInternal(err, "error fetching trip"))
	}
	return c.JSON(http.StatusOK, trip)
}

// UpdateTrip patches the explicitly-provided fields of a trip. Possession of
// a valid credential is the only authorization; the caller does not have to
// be the owner.
// PUT /api/v1/trips/:trip_id
func (h *Handler) UpdateTrip(c echo.Context) error {
	if _, err := h.verifyUser(c); err != nil {
		return h.jsonError(c, err)
	}
	ctx := c.Request().Context()

	var patch domain.TripPatch
	if err := c.Bind(&patch); err != nil {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "invalid request body"))
	}
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return h.jsonError(c, err)
		}
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return h.jsonError(c, domain.Errorf(domain.KindInvalidArgument, "no fields to update"))
	}

	if err := h.store.UpdateTrip(ctx, c.Param("trip_id"), fields); err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "error updating trip"))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Trip updated successfully"})
}

// DeleteTrip removes a trip. Same credential-only authorization as update;
// no cascade and no soft-delete.
// DELETE /api/v1/trips/:trip_id
func (h *Handler) DeleteTrip(c echo.Context) error {
	if _, err := h.verifyUser(c); err != nil {
		return h.jsonError(c, err)
	}

	if err := h.store.DeleteTrip(c.Request().Context(), c.Param("trip_id")); err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "error deleting trip"))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}

// ListTrips returns all trips owned by the caller, in store order.
// GET /api/v1/trips
func (h *Handler) ListTrips(c echo.Context) error {
	uid, err := h.verifyUser(c)
	if err != nil {
		return h.jsonError(c, err)
	}

	trips, err := h.store.ListTripsByOwner(c.Request().Context(), uid)
	if err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "error fetching trips"))
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return c.JSON(http.StatusOK, trips)
}

// ListParticipantTrips returns all trips where the caller is a participant.
// GET /api/v1/trips/participant/me
func (h *Handler) ListParticipantTrips(c echo.Context) error {
	uid, err := h.verifyUser(c)
	if err != nil {
		return h.jsonError(c, err)
	}

	trips, err := h.store.ListTripsByParticipant(c.Request().Context(), uid)
	if err != nil {
		return h.jsonError(c, domain.WrapInternal(err, "error fetching participant trips"))
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return c.JSON(http.StatusOK, trips)
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Errorf(domain.KindInvalidArgument, "title is required")
	}
	if len(title) > domain.MaxTitleLength {
		return domain.Errorf(domain.KindInvalidArgument, "title must be at most %d characters", domain.MaxTitleLength)
	}
	return nil
}
