package model

import reviewModel "bookshare-backend/internal/domains/review/model"

const (
	// MinRating is the lowest rating (1-10 scale) that counts as a positive signal
	MinRating = reviewModel.HighRatingThreshold

	// TopN categories kept per dimension
	TopN = 3

	// FetchFactor multiplies a category's count into its candidate pool size
	FetchFactor = 2
)
