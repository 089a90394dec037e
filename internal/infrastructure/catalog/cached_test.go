package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshare-backend/internal/domains/book/model"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return false, errors.New("redis down")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

type countingSource struct {
	books    map[string]model.Book
	searches int
	gets     int
}

func (s *countingSource) GetBook(_ context.Context, id string) (*model.Book, error) {
	s.gets++
	b, ok := s.books[model.NormalizeID(id)]
	if !ok {
		return nil, wrapError("getBook", id, ErrNotFound)
	}
	return &b, nil
}

func (s *countingSource) Search(_ context.Context, q SearchQuery) ([]model.Book, error) {
	s.searches++
	return []model.Book{{ID: model.NormalizeID("9"), Genre: q.Genre}}, nil
}

func TestCachedClient_GetBook(t *testing.T) {
	src := &countingSource{books: map[string]model.Book{
		"00000000000001": {ID: "00000000000001", Title: "Lalka"},
	}}
	c := NewCachedClient(src, newMemoryCache(), time.Hour)

	for i := 0; i < 3; i++ {
		book, err := c.GetBook(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "Lalka", book.Title)
	}
	assert.Equal(t, 1, src.gets)

	// padded and unpadded ids share the entry
	_, err := c.GetBook(context.Background(), "00000000000001")
	require.NoError(t, err)
	assert.Equal(t, 1, src.gets)
}

func TestCachedClient_NotFoundIsNotCached(t *testing.T) {
	src := &countingSource{books: map[string]model.Book{}}
	c := NewCachedClient(src, newMemoryCache(), time.Hour)

	for i := 0; i < 2; i++ {
		_, err := c.GetBook(context.Background(), "404")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, 2, src.gets)
}

func TestCachedClient_Search(t *testing.T) {
	src := &countingSource{}
	c := NewCachedClient(src, newMemoryCache(), time.Hour)

	q := SearchQuery{Genre: "Fantasy", Limit: 4}
	for i := 0; i < 2; i++ {
		books, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Fantasy", books[0].Genre)
	}
	assert.Equal(t, 1, src.searches)

	// a different limit is a different entry
	_, err := c.Search(context.Background(), SearchQuery{Genre: "Fantasy", Limit: 6})
	require.NoError(t, err)
	assert.Equal(t, 2, src.searches)
}

func TestCachedClient_CacheFailureFallsThrough(t *testing.T) {
	src := &countingSource{books: map[string]model.Book{
		"00000000000001": {ID: "00000000000001"},
	}}
	mc := newMemoryCache()
	mc.failGet = true
	c := NewCachedClient(src, mc, time.Hour)

	_, err := c.GetBook(context.Background(), "1")
	require.NoError(t, err)
	_, err = c.GetBook(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 2, src.gets)
}

func TestNewCachedClient_Disabled(t *testing.T) {
	src := &countingSource{}
	assert.Same(t, Source(src), NewCachedClient(src, newMemoryCache(), 0))
	assert.Same(t, Source(src), NewCachedClient(src, nil, time.Hour))
}
