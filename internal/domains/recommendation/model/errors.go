package model

import "errors"

// Messages of the public error bodies
const (
	MsgUserIDRequired       = "User ID is required"
	MsgRecommendationFailed = "Failed to fetch recommendations"
)

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrReviewSource   = errors.New("review source unavailable")
)
