package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a catalog book.
// UserID is the opaque id issued by the auth provider.
type Review struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"user_id"`
	BookID string    `json:"book_id"` // normalized catalog id

	Rating  int    `json:"rating"` // 1-10
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatedBook is the (bookId, rating) pair read by the recommendation pipeline
type RatedBook struct {
	BookID string
	Rating int
}

// IsHighlyRated reports whether the rating is a positive signal for recommendations
func (r *Review) IsHighlyRated() bool {
	return r.Rating >= HighRatingThreshold
}
