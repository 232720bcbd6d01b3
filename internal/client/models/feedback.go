package models

type FeedbackRequest struct {
	Impression string `json:"impression"`
	Feedback   string `json:"feedback"`
}

type Feedback struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Impression string    `json:"impression"`
	Feedback   string    `json:"feedback"`
	Timestamp  Timestamp `json:"timestamp"`
}

type FeedbackList struct {
	Feedback []Feedback `json:"feedback"`
}

// Impressions offered by the feedback form.
var Impressions = []string{"Great", "Good", "Neutral", "Bad"}
