package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookModel "bookshare-backend/internal/domains/book/model"
)

func TestDecadeLabel(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1994, "1990s"},
		{2005, "2000s"},
		{1999, "1990s"},
		{1990, "1990s"},
		{2000, "2000s"},
		{7, "0s"},
		{-5, "-10s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecadeLabel(tt.year), tt.year)
	}
}

func TestAttribute(t *testing.T) {
	book := bookModel.Book{Genre: "Fantasy", Author: "Sapkowski, Andrzej", Language: "polski", PublicationYear: "1994"}

	for d, want := range map[Dimension]string{
		DimensionGenre:    "Fantasy",
		DimensionAuthor:   "Sapkowski, Andrzej",
		DimensionLanguage: "polski",
		DimensionDecade:   "1990s",
	} {
		got, ok := Attribute(book, d)
		assert.True(t, ok, d)
		assert.Equal(t, want, got, d)
	}

	empty := bookModel.Book{PublicationYear: "n/a"}
	for _, d := range Dimensions {
		_, ok := Attribute(empty, d)
		assert.False(t, ok, d)
	}
}

func TestEmptyResponseListsAreNonNil(t *testing.T) {
	stats := NewStats()
	recs := NewRecommendations()
	for _, d := range Dimensions {
		assert.NotNil(t, stats.For(d), d)
		assert.Empty(t, stats.For(d), d)
		assert.NotNil(t, recs.For(d), d)
	}
}
