package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/infrastructure/metrics"
	"bookshare-backend/pkg/cache"
)

const (
	bookKeyPrefix   = "catalog:book:"
	searchKeyPrefix = "catalog:search:"
)

// CachedClient serves catalog answers from the cache when present.
// Entries are immutable snapshots of the catalog, so there is no invalidation;
// the TTL bounds staleness. Cache failures fall through to the network and
// not-found answers are never cached.
type CachedClient struct {
	next  Source
	cache cache.Cache
	ttl   time.Duration
}

var _ Source = (*CachedClient)(nil)

// NewCachedClient wraps next with c. A nil cache or non-positive ttl disables caching.
func NewCachedClient(next Source, c cache.Cache, ttl time.Duration) Source {
	if c == nil || ttl <= 0 {
		return next
	}
	return &CachedClient{next: next, cache: c, ttl: ttl}
}

func (c *CachedClient) GetBook(ctx context.Context, id string) (*model.Book, error) {
	key := bookKeyPrefix + model.NormalizeID(id)

	var cached model.Book
	if c.lookup(ctx, "book", key, &cached) {
		return &cached, nil
	}

	book, err := c.next.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, book)
	return book, nil
}

func (c *CachedClient) Search(ctx context.Context, q SearchQuery) ([]model.Book, error) {
	key := searchKeyPrefix + q.Key()

	var cached []model.Book
	if c.lookup(ctx, "search", key, &cached) {
		return cached, nil
	}

	books, err := c.next.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, books)
	return books, nil
}

func (c *CachedClient) lookup(ctx context.Context, kind, key string, dest interface{}) bool {
	found, err := c.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.CatalogCacheTotal.WithLabelValues(kind, "error").Inc()
		log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		return false
	case found:
		metrics.CatalogCacheTotal.WithLabelValues(kind, "hit").Inc()
		return true
	default:
		metrics.CatalogCacheTotal.WithLabelValues(kind, "miss").Inc()
		return false
	}
}

func (c *CachedClient) store(ctx context.Context, key string, value interface{}) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
