package service

import (
	"context"

	"bookshare-backend/internal/domains/recommendation/model"
	reviewModel "bookshare-backend/internal/domains/review/model"
)

// =====================================================
// RECOMMENDATION SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// GetRecommendations runs the full pipeline for one user
	GetRecommendations(ctx context.Context, userID string) (*model.RecommendationResponse, error)
}

// ReviewSource yields the books a user rated at or above the threshold.
// Failure is all-or-nothing.
type ReviewSource interface {
	HighlyRatedBooks(ctx context.Context, userID string) ([]reviewModel.RatedBook, error)
}
