package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest request to create review.
// UserID is the opaque caller id; authentication happens upstream.
type CreateReviewRequest struct {
	UserID  string `json:"user_id"`
	BookID  string `json:"book_id"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

func (r *CreateReviewRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.BookID = strings.TrimSpace(r.BookID)
	r.Content = strings.TrimSpace(r.Content)

	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.BookID, validation.Required, validation.Length(1, 14)),
		validation.Field(&r.Rating, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Content, validation.Length(0, MaxContentLength)),
	)
}

// ListReviewsRequest request to list a user's reviews
type ListReviewsRequest struct {
	UserID string `form:"userId"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListReviewsRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > MaxPageLimit {
		r.Limit = DefaultPageLimit
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required),
	)
}

// Offset của page hiện tại
func (r *ListReviewsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ReviewResponse response for review detail
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	BookID    string    `json:"book_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListReviewsResponse is one page of reviews
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// ToResponse converts entity to response
func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
