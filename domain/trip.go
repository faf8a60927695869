// Package domain defines the core data models for the trip planner backend.
package domain

import "time"

// MaxTitleLength is the upper bound on a trip title.
const MaxTitleLength = 200

// Trip is a stored trip record. The ID is the document id assigned by the
// store on creation and is never persisted inside the document itself.
type Trip struct {
	ID           string    `json:"id" firestore:"-"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description"`
	StartDate    time.Time `json:"start_date" firestore:"start_date"`
	EndDate      time.Time `json:"end_date" firestore:"end_date"`
	Destinations []string  `json:"destinations" firestore:"destinations"`
	Participants []string  `json:"participants" firestore:"participants"` // user ids
	CreatedBy    string    `json:"created_by" firestore:"created_by"`
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updated_at"`
}

// TripCreate is the request body for creating a trip. CreatedBy is accepted
// on the wire but always overwritten with the verified caller identity.
type TripCreate struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Destinations []string  `json:"destinations"`
	Participants []string  `json:"participants"`
	CreatedBy    string    `json:"created_by"`
}

// TripPatch is a partial update. Only non-nil fields are applied to the
// stored record. There is deliberately no CreatedBy field: the owner is
// immutable after creation.
type TripPatch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Destinations *[]string  `json:"destinations"`
	Participants *[]string  `json:"participants"`
}

// Fields returns the effective (non-nil) fields of the patch keyed by their
// stored field name. An empty map means the patch has nothing to apply.
func (p TripPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		fields["end_date"] = *p.EndDate
	}
	if p.Destinations != nil {
		fields["destinations"] = *p.Destinations
	}
	if p.Participants != nil {
		fields["participants"] = *p.Participants
	}
	return fields
}
