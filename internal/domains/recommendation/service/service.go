package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/domains/recommendation/model"
	"bookshare-backend/internal/infrastructure/metrics"
)

type RecommendationService struct {
	reviews  ReviewSource
	resolver *Resolver
	fetcher  *Fetcher
}

func NewRecommendationService(reviews ReviewSource, resolver *Resolver, fetcher *Fetcher) ServiceInterface {
	return &RecommendationService{
		reviews:  reviews,
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// GetRecommendations chạy pipeline: reviews -> metadata -> ranking -> similar books
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID string) (*model.RecommendationResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, model.ErrUserIDRequired
	}

	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.RecommendationRequestsTotal.WithLabelValues(outcome).Inc()
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	// Step 1: highly rated books (only step that can fail the request)
	rated, err := s.reviews.HighlyRatedBooks(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load highly rated reviews")
		return nil, fmt.Errorf("%w: %v", model.ErrReviewSource, err)
	}

	ids := make([]string, 0, len(rated))
	for _, r := range rated {
		if r.Rating < model.MinRating {
			continue
		}
		ids = append(ids, r.BookID)
	}

	// Step 2: resolve metadata, failures are dropped
	books := s.resolver.Resolve(ctx, ids)

	// Step 3: rank categories
	stats := Rank(books)

	// Step 4: similar books per category
	recs := s.fetcher.Fetch(ctx, stats)

	outcome = "ok"
	if len(books) == 0 {
		outcome = "empty"
	}

	log.Info().
		Str("user_id", userID).
		Int("rated", len(ids)).
		Int("resolved", len(books)).
		Dur("duration", time.Since(start)).
		Msg("Recommendations built")

	return &model.RecommendationResponse{
		Recommendations: recs,
		Stats:           stats,
	}, nil
}
