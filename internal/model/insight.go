package model

// Confidence is the backend's confidence in a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Recommendation is a personalised food suggestion produced by the analytics backend.
type Recommendation struct {
	Name            string     `json:"name"`
	MatchPercentage float64    `json:"match_percentage"`
	ImageURL        string     `json:"image_url"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	Confidence      Confidence `json:"confidence"`
	Tags            []string   `json:"tags"`
}

// RecommendationsResponse is the payload of GET /api/user/{userId}/recommendations.
type RecommendationsResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}

// Dislike is a food the user tends to leave uneaten.
type Dislike struct {
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
	LastSeen  string `json:"last_seen"`
	Category  string `json:"category"`
}

// DislikesResponse is the payload of GET /api/user/{userId}/dislikes.
type DislikesResponse struct {
	Success  bool      `json:"success"`
	Dislikes []Dislike `json:"dislikes"`
	Count    int       `json:"count"`
}
