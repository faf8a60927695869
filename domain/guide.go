package domain

import "time"

// AIGuideRequest is a free-form travel question.
type AIGuideRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"` // defaults to "en"
	Location string `json:"location,omitempty"`
	// TripDates carries opaque "start"/"end" values. They are rendered into
	// the prompt as-is and never parsed.
	TripDates   map[string]string `json:"trip_dates,omitempty"`
	Preferences []string          `json:"preferences,omitempty"`
}

// Recommendation is a single structured suggestion. It only ever appears
// nested inside an AIGuideResponse or a recommendations listing.
type Recommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"` // e.g. "restaurant", "attraction", "activity"
	Location      string   `json:"location,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	Tips          []string `json:"tips,omitempty"`
}

// AIGuideResponse holds the generated narrative. Recommendations stays empty
// under the current generation behavior: the model's free text is not parsed
// into structured items.
type AIGuideResponse struct {
	Query           string           `json:"query"`
	Response        string           `json:"response"`
	Recommendations []Recommendation `json:"recommendations"`
	Language        string           `json:"language"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
