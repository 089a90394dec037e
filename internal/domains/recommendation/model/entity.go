package model

import (
	"fmt"

	bookModel "bookshare-backend/internal/domains/book/model"
)

// Dimension is one of the category axes used for aggregation
type Dimension string

const (
	DimensionGenre    Dimension = "genre"
	DimensionAuthor   Dimension = "author"
	DimensionLanguage Dimension = "language"
	DimensionDecade   Dimension = "decade"
)

// Dimensions in response order
var Dimensions = []Dimension{DimensionGenre, DimensionAuthor, DimensionLanguage, DimensionDecade}

// CategoryCount is one category value and how many resolved books carry it
type CategoryCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// RecommendationGroup holds the candidate books fetched for one top category
type RecommendationGroup struct {
	Category string           `json:"category"`
	Books    []bookModel.Book `json:"books"`
}

type Stats struct {
	Genres    []CategoryCount `json:"genres"`
	Authors   []CategoryCount `json:"authors"`
	Languages []CategoryCount `json:"languages"`
	Decades   []CategoryCount `json:"decades"`
}

type Recommendations struct {
	ByGenre    []RecommendationGroup `json:"byGenre"`
	ByAuthor   []RecommendationGroup `json:"byAuthor"`
	ByLanguage []RecommendationGroup `json:"byLanguage"`
	ByDecade   []RecommendationGroup `json:"byDecade"`
}

// RecommendationResponse is the body of GET /api/recommendations
type RecommendationResponse struct {
	Recommendations Recommendations `json:"recommendations"`
	Stats           Stats           `json:"stats"`
}

// NewStats returns stats with every list empty (never nil)
func NewStats() Stats {
	return Stats{
		Genres:    []CategoryCount{},
		Authors:   []CategoryCount{},
		Languages: []CategoryCount{},
		Decades:   []CategoryCount{},
	}
}

// NewRecommendations returns recommendations with every list empty (never nil)
func NewRecommendations() Recommendations {
	return Recommendations{
		ByGenre:    []RecommendationGroup{},
		ByAuthor:   []RecommendationGroup{},
		ByLanguage: []RecommendationGroup{},
		ByDecade:   []RecommendationGroup{},
	}
}

func (s Stats) For(d Dimension) []CategoryCount {
	switch d {
	case DimensionGenre:
		return s.Genres
	case DimensionAuthor:
		return s.Authors
	case DimensionLanguage:
		return s.Languages
	case DimensionDecade:
		return s.Decades
	}
	return nil
}

func (s *Stats) Set(d Dimension, counts []CategoryCount) {
	switch d {
	case DimensionGenre:
		s.Genres = counts
	case DimensionAuthor:
		s.Authors = counts
	case DimensionLanguage:
		s.Languages = counts
	case DimensionDecade:
		s.Decades = counts
	}
}

func (r Recommendations) For(d Dimension) []RecommendationGroup {
	switch d {
	case DimensionGenre:
		return r.ByGenre
	case DimensionAuthor:
		return r.ByAuthor
	case DimensionLanguage:
		return r.ByLanguage
	case DimensionDecade:
		return r.ByDecade
	}
	return nil
}

func (r *Recommendations) Set(d Dimension, groups []RecommendationGroup) {
	switch d {
	case DimensionGenre:
		r.ByGenre = groups
	case DimensionAuthor:
		r.ByAuthor = groups
	case DimensionLanguage:
		r.ByLanguage = groups
	case DimensionDecade:
		r.ByDecade = groups
	}
}

// DecadeLabel turns a year into its decade label: 1994 -> "1990s"
func DecadeLabel(year int) string {
	decade := year / 10
	if year < 0 && year%10 != 0 {
		decade--
	}
	return fmt.Sprintf("%ds", decade*10)
}

// Attribute returns the grouping key of book for dimension d.
// ok is false when the book lacks the attribute.
func Attribute(book bookModel.Book, d Dimension) (string, bool) {
	var value string
	switch d {
	case DimensionGenre:
		value = book.Genre
	case DimensionAuthor:
		value = book.Author
	case DimensionLanguage:
		value = book.Language
	case DimensionDecade:
		year, ok := book.Year()
		if !ok {
			return "", false
		}
		value = DecadeLabel(year)
	}
	return value, value != ""
}
