package service

import (
	"context"

	"github.com/google/uuid"

	"bookshare-backend/internal/domains/review/model"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// CreateReview creates new review
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewResponse, error)

	// ListUserReviews lists reviews by one user
	ListUserReviews(ctx context.Context, req model.ListReviewsRequest) (*model.ListReviewsResponse, error)

	// DeleteReview deletes a review owned by userID
	DeleteReview(ctx context.Context, userID string, reviewID uuid.UUID) error

	// HighlyRatedBooks yields the books the user rated >= HighRatingThreshold.
	// Any storage failure fails the whole call.
	HighlyRatedBooks(ctx context.Context, userID string) ([]model.RatedBook, error)
}

// Enqueuer schedules catalog warm-up for a freshly liked book
type Enqueuer interface {
	EnqueueWarmBook(ctx context.Context, bookID string) error
}
