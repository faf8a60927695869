package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"koreatrip/domain"
)

const tripsCollection = "trips"

// FirestoreStore implements TripStore on a Cloud Firestore collection.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an already-initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateTrip(ctx context.Context, trip *domain.Trip) (string, error) {
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	ref := s.client.Collection(tripsCollection).NewDoc()
	if _, err := ref.Set(ctx, trip); err != nil {
		return "", fmt.Errorf("create trip: %w", err)
	}
	trip.ID = ref.ID
	return ref.ID, nil
}

func (s *FirestoreStore) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	snap, err := s.client.Collection(tripsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.Errorf(domain.KindNotFound, "trip not found")
		}
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}

	var trip domain.Trip
	if err := snap.DataTo(&trip); err != nil {
		return nil, fmt.Errorf("decode trip %s: %w", id, err)
	}
	trip.ID = snap.Ref.ID
	return &trip, nil
}

func (s *FirestoreStore) UpdateTrip(ctx context.Context, id string, fields map[string]interface{}) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys)+1)
	for _, k := range keys {
		updates = append(updates, firestore.Update{Path: k, Value: fields[k]})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: time.Now().UTC()})

	if _, err := s.client.Collection(tripsCollection).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("update trip %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteTrip(ctx context.Context, id string) error {
	if _, err := s.client.Collection(tripsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete trip %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) ListTripsByOwner(ctx context.Context, uid string) ([]domain.Trip, error) {
	query := s.client.Collection(tripsCollection).Where("created_by", "==", uid)
	return s.listTrips(query.Documents(ctx))
}

func (s *FirestoreStore) ListTripsByParticipant(ctx context.Context, uid string) ([]domain.Trip, error) {
	query := s.client.Collection(tripsCollection).Where("participants", "array-contains", uid)
	return s.listTrips(query.Documents(ctx))
}

func (s *FirestoreStore) listTrips(iter *firestore.DocumentIterator) ([]domain.Trip, error) {
	defer iter.Stop()

	var trips []domain.Trip
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}

		var trip domain.Trip
		if err := snap.DataTo(&trip); err != nil {
			return nil, fmt.Errorf("decode trip %s: %w", snap.Ref.ID, err)
		}
		trip.ID = snap.Ref.ID
		trips = append(trips, trip)
	}
	return trips, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
