package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/infrastructure/catalog"
	"bookshare-backend/internal/infrastructure/metrics"
)

// Resolver turns raw book ids into catalog metadata
type Resolver struct {
	catalog     catalog.Source
	concurrency int
}

func NewResolver(source catalog.Source, concurrency int) *Resolver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Resolver{catalog: source, concurrency: concurrency}
}

// lookup is the per-id outcome; found == false is the unresolved variant
type lookup struct {
	book  bookModel.Book
	found bool
}

// Resolve looks every id up concurrently and waits for all of them.
// Failed lookups are logged and dropped; the result keeps input order and may
// be shorter than ids. It never returns an error.
func (r *Resolver) Resolve(ctx context.Context, ids []string) []bookModel.Book {
	if len(ids) == 0 {
		return []bookModel.Book{}
	}

	results := make([]lookup, len(ids))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			book, err := r.catalog.GetBook(ctx, id)
			if err != nil {
				metrics.RecommendationDroppedTotal.WithLabelValues("metadata").Inc()
				log.Warn().
					Err(err).
					Str("book_id", bookModel.NormalizeID(id)).
					Msg("Book metadata lookup failed, dropping")
				return nil
			}
			results[i] = lookup{book: *book, found: true}
			return nil
		})
	}
	_ = g.Wait()

	books := make([]bookModel.Book, 0, len(ids))
	for _, res := range results {
		if res.found {
			books = append(books, res.book)
		}
	}

	if len(books) == 0 {
		log.Warn().Int("requested", len(ids)).Msg("No book metadata could be resolved")
	}

	return books
}
