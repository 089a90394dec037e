package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshare-backend/internal/domains/review/model"
)

// =====================================================
// REVIEW REPOSITORY INTERFACE
// =====================================================

type ReviewRepository interface {
	// Create creates new review; a second review of the same book by the
	// same user returns model.ErrAlreadyReviewed
	Create(ctx context.Context, review *model.Review) error

	// GetByID gets review by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// ListByUser lists reviews by user, newest first
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*model.Review, int, error)

	// ListHighlyRated returns (book_id, rating) of every review of the user
	// with rating >= minRating, newest first
	ListHighlyRated(ctx context.Context, userID string, minRating int) ([]model.RatedBook, error)

	// Delete deletes review
	Delete(ctx context.Context, id uuid.UUID) error
}
