package model

const (
	MaxContentLength = 2000

	MinRating = 1
	MaxRating = 10

	// HighRatingThreshold: rating >= 7 counts as "liked" for recommendations
	HighRatingThreshold = 7

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
