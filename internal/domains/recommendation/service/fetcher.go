package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/recommendation/model"
	"bookshare-backend/internal/infrastructure/catalog"
	"bookshare-backend/internal/infrastructure/metrics"
)

// FetchLimit sizes the candidate pool of a category from its count
func FetchLimit(count int) int {
	return int(math.Ceil(float64(count) * model.FetchFactor))
}

// Fetcher pulls similar books for every top category
type Fetcher struct {
	catalog       catalog.Source
	concurrency   int
	authorCleanup bool
}

func NewFetcher(source catalog.Source, concurrency int, authorCleanup bool) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		catalog:       source,
		concurrency:   concurrency,
		authorCleanup: authorCleanup,
	}
}

// Fetch searches the catalog for every category of every dimension at once.
// Group i of a dimension always belongs to stats entry i of that dimension;
// a failed search leaves the group with an empty book list.
func (f *Fetcher) Fetch(ctx context.Context, stats model.Stats) model.Recommendations {
	recs := model.NewRecommendations()

	// Step 1: pre-size every group so workers only write their own slot
	groups := make(map[model.Dimension][]model.RecommendationGroup, len(model.Dimensions))
	for _, d := range model.Dimensions {
		counts := stats.For(d)
		dimGroups := make([]model.RecommendationGroup, len(counts))
		for i, cc := range counts {
			dimGroups[i] = model.RecommendationGroup{Category: cc.Item, Books: []bookModel.Book{}}
		}
		groups[d] = dimGroups
	}

	// Step 2: fan out over all (dimension, category) pairs
	var g errgroup.Group
	g.SetLimit(f.concurrency)

	for _, d := range model.Dimensions {
		dimGroups := groups[d]
		for i, cc := range stats.For(d) {
			g.Go(func() error {
				dimGroups[i].Books = f.fetchCategory(ctx, d, cc)
				return nil
			})
		}
	}
	_ = g.Wait()

	// Step 3: assemble in ranker order
	for _, d := range model.Dimensions {
		recs.Set(d, groups[d])
	}
	return recs
}

func (f *Fetcher) fetchCategory(ctx context.Context, d model.Dimension, cc model.CategoryCount) []bookModel.Book {
	query, err := f.BuildQuery(d, cc)
	if err != nil {
		metrics.RecommendationDroppedTotal.WithLabelValues("similar").Inc()
		log.Warn().Err(err).Str("dimension", string(d)).Str("category", cc.Item).Msg("Cannot build category query")
		return []bookModel.Book{}
	}

	books, err := f.catalog.Search(ctx, query)
	if err != nil {
		metrics.RecommendationDroppedTotal.WithLabelValues("similar").Inc()
		log.Warn().
			Err(err).
			Str("dimension", string(d)).
			Str("category", cc.Item).
			Int("limit", query.Limit).
			Msg("Similar books fetch failed")
		return []bookModel.Book{}
	}
	if books == nil {
		return []bookModel.Book{}
	}
	return books
}

// BuildQuery maps one ranked category onto a catalog search
func (f *Fetcher) BuildQuery(d model.Dimension, cc model.CategoryCount) (catalog.SearchQuery, error) {
	q := catalog.SearchQuery{Limit: FetchLimit(cc.Count)}

	switch d {
	case model.DimensionGenre:
		q.Genre = cc.Item
	case model.DimensionAuthor:
		q.Author = cc.Item
		if f.authorCleanup {
			q.Author = NormalizeAuthor(cc.Item)
		}
	case model.DimensionLanguage:
		q.Language = cc.Item
	case model.DimensionDecade:
		start, err := ParseDecade(cc.Item)
		if err != nil {
			return q, err
		}
		q.YearFrom = start
		q.YearTo = start + 9
	default:
		return q, fmt.Errorf("unknown dimension %q", d)
	}
	return q, nil
}

// ParseDecade reverses DecadeLabel: "1990s" -> 1990
func ParseDecade(label string) (int, error) {
	start, err := strconv.Atoi(strings.TrimSuffix(label, "s"))
	if err != nil || !strings.HasSuffix(label, "s") || start%10 != 0 {
		return 0, fmt.Errorf("invalid decade label %q", label)
	}
	return start, nil
}
