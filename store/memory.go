package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"koreatrip/domain"
)

// MemoryStore implements TripStore in memory. It mirrors the Firestore
// behavior closely enough for handler tests: auto-assigned document ids,
// store-owned timestamps, and an update that fails on a missing document.
type MemoryStore struct {
	mu    sync.RWMutex
	trips map[string]domain.Trip
}

// NewMemoryStore creates an empty in-memory trip store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trips: make(map[string]domain.Trip)}
}

func (s *MemoryStore) CreateTrip(_ context.Context, trip *domain.Trip) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.NewString()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	s.trips[trip.ID] = *trip
	return trip.ID, nil
}

func (s *MemoryStore) GetTrip(_ context.Context, id string) (*domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip, ok := s.trips[id]
	if !ok {
		return nil, domain.Errorf(domain.KindNotFound, "trip not found")
	}
	return &trip, nil
}

func (s *MemoryStore) UpdateTrip(_ context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[id]
	if !ok {
		return fmt.Errorf("update trip %s: no document to update", id)
	}

	for k, v := range fields {
		switch k {
		case "title":
			trip.Title = v.(string)
		case "description":
			trip.Description = v.(string)
		case "start_date":
			trip.StartDate = v.(time.Time)
		case "end_date":
			trip.EndDate = v.(time.Time)
		case "destinations":
			trip.Destinations = v.([]string)
		case "participants":
			trip.Participants = v.([]string)
		default:
			return fmt.Errorf("update trip %s: unknown field %q", id, k)
		}
	}
	trip.UpdatedAt = time.Now().UTC()
	s.trips[id] = trip
	return nil
}

func (s *MemoryStore) DeleteTrip(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.trips, id)
	return nil
}

func (s *MemoryStore) ListTripsByOwner(_ context.Context, uid string) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var trips []domain.Trip
	for _, trip := range s.trips {
		if trip.CreatedBy == uid {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

func (s *MemoryStore) ListTripsByParticipant(_ context.Context, uid string) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var trips []domain.Trip
	for _, trip := range s.trips {
		for _, p := range trip.Participants {
			if p == uid {
				trips = append(trips, trip)
				break
			}
		}
	}
	return trips, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
