// Package store defines the trip persistence interface and implementations.
package store

import (
	"context"

	"koreatrip/domain"
)

// TripStore defines the document-store operations the API depends on.
// Implementations assign the document id on creation and own the
// created_at/updated_at timestamps; callers never supply them.
type TripStore interface {
	// CreateTrip stores a new trip and returns its assigned id.
	CreateTrip(ctx context.Context, trip *domain.Trip) (string, error)

	// GetTrip returns the trip at id, or a not-found error.
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)

	// UpdateTrip applies the given fields to the stored record and
	// refreshes its updated_at timestamp.
	UpdateTrip(ctx context.Context, id string, fields map[string]interface{}) error

	// DeleteTrip removes the trip at id.
	DeleteTrip(ctx context.Context, id string) error

	// ListTripsByOwner returns all trips created by uid, in store order.
	ListTripsByOwner(ctx context.Context, uid string) ([]domain.Trip, error)

	// ListTripsByParticipant returns all trips whose participants contain uid.
	ListTripsByParticipant(ctx context.Context, uid string) ([]domain.Trip, error)

	// Lifecycle
	Close() error
}
