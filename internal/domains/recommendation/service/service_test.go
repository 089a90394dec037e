package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/recommendation/model"
	reviewModel "bookshare-backend/internal/domains/review/model"
	"bookshare-backend/internal/infrastructure/catalog"
)

func newService(reviews ReviewSource, src catalog.Source) ServiceInterface {
	return NewRecommendationService(reviews, NewResolver(src, 4), NewFetcher(src, 4, false))
}

func assertAligned(t *testing.T, resp *model.RecommendationResponse) {
	t.Helper()
	for _, d := range model.Dimensions {
		counts := resp.Stats.For(d)
		groups := resp.Recommendations.For(d)
		require.Len(t, groups, len(counts), d)
		assert.LessOrEqual(t, len(counts), model.TopN, d)
		for i := range counts {
			assert.Equal(t, counts[i].Item, groups[i].Category, d)
		}
	}
}

func TestGetRecommendations_OnlyHighRatingsResolved(t *testing.T) {
	src := newFakeCatalog(
		book("1", "Fantasy", "Sapkowski, Andrzej", "polski", "1994"),
		book("2", "Fantasy", "Sapkowski, Andrzej", "polski", "1999"),
		book("3", "Horror", "King, Stephen", "angielski", "2005"),
	)
	fantasy := []bookModel.Book{book("100", "Fantasy", "Z", "polski", "2010")}
	src.search[catalog.SearchQuery{Genre: "Fantasy", Limit: 4}.Key()] = fantasy

	reviews := &fakeReviews{rated: []reviewModel.RatedBook{
		{BookID: "1", Rating: 8},
		{BookID: "2", Rating: 9},
		{BookID: "3", Rating: 5},
	}}

	resp, err := newService(reviews, src).GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"00000000000001", "00000000000002"}, src.lookups)
	assert.Equal(t, []model.CategoryCount{{Item: "Fantasy", Count: 2}}, resp.Stats.Genres)
	assert.Equal(t, []model.CategoryCount{{Item: "1990s", Count: 2}}, resp.Stats.Decades)
	assert.Equal(t, fantasy, resp.Recommendations.ByGenre[0].Books)
	assertAligned(t, resp)
}

func TestGetRecommendations_CatalogDownDegradesToEmpty(t *testing.T) {
	src := newFakeCatalog()
	src.failAll = true
	reviews := &fakeReviews{rated: []reviewModel.RatedBook{{BookID: "1", Rating: 9}, {BookID: "2", Rating: 7}}}

	resp, err := newService(reviews, src).GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	for _, d := range model.Dimensions {
		assert.Empty(t, resp.Stats.For(d))
		assert.Empty(t, resp.Recommendations.For(d))
	}
	assert.Empty(t, src.searches)
}

func TestGetRecommendations_NoReviews(t *testing.T) {
	src := newFakeCatalog()

	resp, err := newService(&fakeReviews{}, src).GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"recommendations": {"byGenre": [], "byAuthor": [], "byLanguage": [], "byDecade": []},
		"stats": {"genres": [], "authors": [], "languages": [], "decades": []}
	}`, string(raw))
	assert.Empty(t, src.lookups)
}

func TestGetRecommendations_MissingUser(t *testing.T) {
	_, err := newService(&fakeReviews{}, newFakeCatalog()).GetRecommendations(context.Background(), "  ")
	assert.ErrorIs(t, err, model.ErrUserIDRequired)
}

func TestGetRecommendations_ReviewSourceFailure(t *testing.T) {
	reviews := &fakeReviews{err: errors.New("connection refused")}

	_, err := newService(reviews, newFakeCatalog()).GetRecommendations(context.Background(), "user-1")
	assert.ErrorIs(t, err, model.ErrReviewSource)
}

func TestGetRecommendations_SameBookInSeveralGroups(t *testing.T) {
	src := newFakeCatalog(book("1", "Fantasy", "Sapkowski, Andrzej", "polski", "1994"))
	shared := []bookModel.Book{book("50", "Fantasy", "Sapkowski, Andrzej", "polski", "1993")}
	src.search[catalog.SearchQuery{Genre: "Fantasy", Limit: 2}.Key()] = shared
	src.search[catalog.SearchQuery{Author: "Sapkowski, Andrzej", Limit: 2}.Key()] = shared

	reviews := &fakeReviews{rated: []reviewModel.RatedBook{{BookID: "1", Rating: 10}}}

	resp, err := newService(reviews, src).GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, shared, resp.Recommendations.ByGenre[0].Books)
	assert.Equal(t, shared, resp.Recommendations.ByAuthor[0].Books)
	assertAligned(t, resp)
}
