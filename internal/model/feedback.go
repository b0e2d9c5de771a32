package model

import "time"

// Feedback is a star-rated feedback entry.
type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedback is the insertable shape of a Feedback entry.
type NewFeedback struct {
	Name    string
	Email   string
	Rating  int
	Comment string
}

// Rating bounds accepted by the API.
const (
	MinRating = 1
	MaxRating = 5
)
