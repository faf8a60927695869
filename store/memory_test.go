package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koreatrip/domain"
)

func TestMemoryStoreCreateAssignsIDAndTimestamps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	trip := &domain.Trip{Title: "Seoul", CreatedBy: "u1"}
	id, err := s.CreateTrip(ctx, trip)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, trip.ID)
	assert.False(t, trip.CreatedAt.IsZero())
	assert.Equal(t, trip.CreatedAt, trip.UpdatedAt)

	got, err := s.GetTrip(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Seoul", got.Title)
	assert.Equal(t, "u1", got.CreatedBy)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetTrip(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	trip := &domain.Trip{Title: "Seoul", Description: "first visit", CreatedBy: "u1"}
	id, err := s.CreateTrip(ctx, trip)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	err = s.UpdateTrip(ctx, id, map[string]interface{}{
		"title":        "Seoul and Busan",
		"destinations": []string{"Seoul", "Busan"},
	})
	require.NoError(t, err)

	got, err := s.GetTrip(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Seoul and Busan", got.Title)
	assert.Equal(t, "first visit", got.Description)
	assert.Equal(t, []string{"Seoul", "Busan"}, got.Destinations)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	// owner never changes through a patch
	assert.Equal(t, "u1", got.CreatedBy)
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	s := NewMemoryStore()

	err := s.UpdateTrip(context.Background(), "nope", map[string]interface{}{"title": "x"})
	require.Error(t, err)
	// a missing document is a plain store failure, not a not-found
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.CreateTrip(ctx, &domain.Trip{Title: "Seoul", CreatedBy: "u1"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTrip(ctx, id))
	_, err = s.GetTrip(ctx, id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	// deleting a missing document is not an error
	assert.NoError(t, s.DeleteTrip(ctx, id))
}

func TestMemoryStoreListByOwner(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.CreateTrip(ctx, &domain.Trip{Title: "A", CreatedBy: "u1"})
	require.NoError(t, err)
	_, err = s.CreateTrip(ctx, &domain.Trip{Title: "B", CreatedBy: "u1"})
	require.NoError(t, err)
	_, err = s.CreateTrip(ctx, &domain.Trip{Title: "C", CreatedBy: "u2"})
	require.NoError(t, err)

	trips, err := s.ListTripsByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, trips, 2)

	trips, err = s.ListTripsByOwner(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestMemoryStoreListByParticipant(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.CreateTrip(ctx, &domain.Trip{Title: "A", CreatedBy: "u1", Participants: []string{"u2", "u3"}})
	require.NoError(t, err)
	_, err = s.CreateTrip(ctx, &domain.Trip{Title: "B", CreatedBy: "u1", Participants: []string{"u3"}})
	require.NoError(t, err)

	trips, err := s.ListTripsByParticipant(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "A", trips[0].Title)

	trips, err = s.ListTripsByParticipant(ctx, "u3")
	require.NoError(t, err)
	assert.Len(t, trips, 2)
}
