package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/recommendation/model"
)

func TestRank_GenreCounts(t *testing.T) {
	books := []bookModel.Book{
		{Genre: "Fantasy"},
		{Genre: "Fantasy"},
		{Genre: "Sci-Fi"},
	}

	stats := Rank(books)

	assert.Equal(t, []model.CategoryCount{
		{Item: "Fantasy", Count: 2},
		{Item: "Sci-Fi", Count: 1},
	}, stats.Genres)
	assert.Empty(t, stats.Authors)
	assert.Empty(t, stats.Languages)
	assert.Empty(t, stats.Decades)
}

func TestRank_EmptyInput(t *testing.T) {
	stats := Rank(nil)

	for _, d := range model.Dimensions {
		require.NotNil(t, stats.For(d), d)
		assert.Empty(t, stats.For(d), d)
	}
}

func TestTopCategories_BoundAndOrder(t *testing.T) {
	var books []bookModel.Book
	for i, n := range []int{1, 4, 2, 5, 3} {
		for j := 0; j < n; j++ {
			books = append(books, bookModel.Book{Language: fmt.Sprintf("lang-%d", i)})
		}
	}

	top := TopCategories(books, model.DimensionLanguage, model.TopN)

	require.Len(t, top, 3)
	assert.Equal(t, "lang-3", top[0].Item)
	assert.Equal(t, "lang-1", top[1].Item)
	assert.Equal(t, "lang-4", top[2].Item)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}

func TestTopCategories_TiesKeepFirstSeen(t *testing.T) {
	books := []bookModel.Book{
		{Author: "Lem, Stanisław"},
		{Author: "Sapkowski, Andrzej"},
		{Author: "Tokarczuk, Olga"},
		{Author: "Herbert, Frank"},
	}

	top := TopCategories(books, model.DimensionAuthor, model.TopN)

	assert.Equal(t, []model.CategoryCount{
		{Item: "Lem, Stanisław", Count: 1},
		{Item: "Sapkowski, Andrzej", Count: 1},
		{Item: "Tokarczuk, Olga", Count: 1},
	}, top)
}

func TestTopCategories_AuthorIsRawKey(t *testing.T) {
	books := []bookModel.Book{
		{Author: "Pratchett, Terry ; Gaiman, Neil"},
		{Author: "Pratchett, Terry"},
	}

	top := TopCategories(books, model.DimensionAuthor, model.TopN)

	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Count)
	assert.Equal(t, 1, top[1].Count)
}

func TestTopCategories_MissingAttributeSkippedPerDimension(t *testing.T) {
	books := []bookModel.Book{
		{Genre: "Fantasy", PublicationYear: "1994"},
		{Genre: "", PublicationYear: "1999"},
		{Genre: "Fantasy", PublicationYear: "[ca 2001]"},
	}

	stats := Rank(books)

	assert.Equal(t, []model.CategoryCount{{Item: "Fantasy", Count: 2}}, stats.Genres)
	assert.Equal(t, []model.CategoryCount{{Item: "1990s", Count: 2}}, stats.Decades)
}
