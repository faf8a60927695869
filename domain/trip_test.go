package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTripPatchFieldsEmpty(t *testing.T) {
	assert.Empty(t, TripPatch{}.Fields())
}

func TestTripPatchFieldsOnlyNonNil(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	dests := []string{"Seoul", "Jeonju"}

	patch := TripPatch{
		Title:        strPtr("Autumn trip"),
		StartDate:    &start,
		Destinations: &dests,
	}

	fields := patch.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "Autumn trip", fields["title"])
	assert.Equal(t, start, fields["start_date"])
	assert.Equal(t, dests, fields["destinations"])
	assert.NotContains(t, fields, "description")
	assert.NotContains(t, fields, "end_date")
	assert.NotContains(t, fields, "participants")
}

func TestTripPatchExplicitEmptyValuesAreEffective(t *testing.T) {
	// an explicit empty string or empty list is still an effective field
	empty := []string{}
	patch := TripPatch{
		Description:  strPtr(""),
		Participants: &empty,
	}

	fields := patch.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "", fields["description"])
	assert.Equal(t, []string{}, fields["participants"])
}
