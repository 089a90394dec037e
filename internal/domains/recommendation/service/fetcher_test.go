package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/recommendation/model"
	"bookshare-backend/internal/infrastructure/catalog"
)

func TestFetchLimit(t *testing.T) {
	assert.Equal(t, 2, FetchLimit(1))
	assert.Equal(t, 4, FetchLimit(2))
	assert.Equal(t, 6, FetchLimit(3))
	assert.Equal(t, 0, FetchLimit(0))
}

func TestBuildQuery(t *testing.T) {
	f := NewFetcher(newFakeCatalog(), 1, false)

	tests := []struct {
		name string
		dim  model.Dimension
		cc   model.CategoryCount
		want catalog.SearchQuery
	}{
		{"genre", model.DimensionGenre, model.CategoryCount{Item: "Fantastyka", Count: 2},
			catalog.SearchQuery{Genre: "Fantastyka", Limit: 4}},
		{"author", model.DimensionAuthor, model.CategoryCount{Item: "Lem, Stanisław (1921-2006)", Count: 1},
			catalog.SearchQuery{Author: "Lem, Stanisław (1921-2006)", Limit: 2}},
		{"language", model.DimensionLanguage, model.CategoryCount{Item: "polski", Count: 3},
			catalog.SearchQuery{Language: "polski", Limit: 6}},
		{"decade", model.DimensionDecade, model.CategoryCount{Item: "1990s", Count: 1},
			catalog.SearchQuery{YearFrom: 1990, YearTo: 1999, Limit: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := f.BuildQuery(tt.dim, tt.cc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestBuildQuery_AuthorCleanup(t *testing.T) {
	f := NewFetcher(newFakeCatalog(), 1, true)

	q, err := f.BuildQuery(model.DimensionAuthor, model.CategoryCount{Item: "Lem, Stanisław (1921-2006)", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, "Lem, Stanisław", q.Author)
}

func TestParseDecade(t *testing.T) {
	start, err := ParseDecade("2000s")
	require.NoError(t, err)
	assert.Equal(t, 2000, start)

	for _, bad := range []string{"", "1990", "1995s", "abcs"} {
		_, err := ParseDecade(bad)
		assert.Error(t, err, bad)
	}
}

func TestFetch_AlignmentAndFailureIsolation(t *testing.T) {
	src := newFakeCatalog()
	fantasy := []bookModel.Book{book("10", "Fantasy", "X", "polski", "2001")}
	src.search[catalog.SearchQuery{Genre: "Fantasy", Limit: 4}.Key()] = fantasy
	src.failKeys[catalog.SearchQuery{Genre: "Sci-Fi", Limit: 2}.Key()] = true

	stats := model.NewStats()
	stats.Genres = []model.CategoryCount{{Item: "Fantasy", Count: 2}, {Item: "Sci-Fi", Count: 1}}
	stats.Decades = []model.CategoryCount{{Item: "1990s", Count: 1}}

	recs := NewFetcher(src, 3, false).Fetch(context.Background(), stats)

	for _, d := range model.Dimensions {
		groups := recs.For(d)
		counts := stats.For(d)
		require.Len(t, groups, len(counts), d)
		for i := range counts {
			assert.Equal(t, counts[i].Item, groups[i].Category)
			assert.NotNil(t, groups[i].Books)
		}
	}

	assert.Equal(t, fantasy, recs.ByGenre[0].Books)
	assert.Empty(t, recs.ByGenre[1].Books)
	assert.Empty(t, recs.ByDecade[0].Books)

	_, searched := src.searchFor(catalog.SearchQuery{YearFrom: 1990, YearTo: 1999, Limit: 2})
	assert.True(t, searched)
}

func TestFetch_EmptyStats(t *testing.T) {
	src := newFakeCatalog()

	recs := NewFetcher(src, 2, false).Fetch(context.Background(), model.NewStats())

	for _, d := range model.Dimensions {
		assert.NotNil(t, recs.For(d))
		assert.Empty(t, recs.For(d))
	}
	assert.Empty(t, src.searches)
}
