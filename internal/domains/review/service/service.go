package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/review/model"
	"bookshare-backend/internal/domains/review/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	enqueuer   Enqueuer // optional
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	enqueuer Enqueuer,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		enqueuer:   enqueuer,
	}
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(
	ctx context.Context,
	req model.CreateReviewRequest,
) (*model.ReviewResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, &model.ReviewError{
			Code:    model.ErrCodeInvalidRequest,
			Message: "Invalid review",
			Err:     err,
		}
	}

	// Step 2: Build entity, book id luôn ở dạng 14 chữ số
	now := time.Now().UTC()
	review := &model.Review{
		ID:        uuid.New(),
		UserID:    req.UserID,
		BookID:    bookModel.NormalizeID(req.BookID),
		Rating:    req.Rating,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Step 3: Save to database
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, model.ErrAlreadyReviewed) {
			return nil, model.NewAlreadyReviewedError()
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Step 4: Warm catalog cache cho sách được thích (best effort)
	if review.IsHighlyRated() && s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWarmBook(ctx, review.BookID); err != nil {
			log.Warn().
				Err(err).
				Str("book_id", review.BookID).
				Msg("Failed to enqueue catalog warm-up")
		}
	}

	log.Info().
		Str("review_id", review.ID.String()).
		Str("user_id", review.UserID).
		Str("book_id", review.BookID).
		Int("rating", review.Rating).
		Msg("Review created")

	response := review.ToResponse()
	return &response, nil
}

// =====================================================
// LIST USER REVIEWS
// =====================================================

func (s *reviewService) ListUserReviews(
	ctx context.Context,
	req model.ListReviewsRequest,
) (*model.ListReviewsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.ReviewError{
			Code:    model.ErrCodeInvalidRequest,
			Message: "Invalid list request",
			Err:     err,
		}
	}

	reviews, total, err := s.reviewRepo.ListByUser(ctx, req.UserID, req.Page, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	items := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, review.ToResponse())
	}

	return &model.ListReviewsResponse{
		Reviews: items,
		Total:   total,
		Page:    req.Page,
		Limit:   req.Limit,
	}, nil
}

// =====================================================
// DELETE REVIEW
// =====================================================

func (s *reviewService) DeleteReview(
	ctx context.Context,
	userID string,
	reviewID uuid.UUID,
) error {
	// Step 1: Load review
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	// Step 2: Chỉ owner mới được xoá
	if review.UserID != userID {
		return model.NewForbiddenError()
	}

	// Step 3: Delete
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// =====================================================
// HIGHLY RATED BOOKS
// =====================================================

func (s *reviewService) HighlyRatedBooks(ctx context.Context, userID string) ([]model.RatedBook, error) {
	rated, err := s.reviewRepo.ListHighlyRated(ctx, userID, model.HighRatingThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to load highly rated books: %w", err)
	}
	return rated, nil
}
