package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/domains/review/model"
	"bookshare-backend/internal/domains/review/service"
	"bookshare-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview creates new review
// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	// Step 2: Call service (validation included)
	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, review)
}

// ListReviews lists reviews of one user
// GET /api/reviews?userId=&page=&limit=
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var req model.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	result, err := h.reviewService.ListUserReviews(c.Request.Context(), req)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Reviews, &response.Meta{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
	})
}

// DeleteReview deletes the caller's review
// DELETE /api/reviews/:id?userId=
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	// Step 2: Caller identity
	userID := c.Query("userId")
	if userID == "" {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidRequest, "userId is required")
		return
	}

	// Step 3: Call service
	if err := h.reviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Review deleted successfully",
	})
}

// respondReviewError maps review errors to HTTP status codes.
// Unknown errors are logged and hidden behind a generic 500.
func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		switch reviewErr.Code {
		case model.ErrCodeReviewNotFound:
			response.ErrorResponse(c, http.StatusNotFound, reviewErr.Code, reviewErr.Message)
			return
		case model.ErrCodeAlreadyReviewed:
			response.ErrorResponse(c, http.StatusConflict, reviewErr.Code, reviewErr.Message)
			return
		case model.ErrCodeForbidden:
			response.ErrorResponse(c, http.StatusForbidden, reviewErr.Code, reviewErr.Message)
			return
		case model.ErrCodeInvalidRequest:
			response.ErrorWithDetails(c, http.StatusBadRequest, reviewErr.Code, reviewErr.Message, reviewErr.Err)
			return
		}
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Review request failed")
	response.InternalServerError(c, "Internal server error")
}
