package service

import (
	"sort"

	bookModel "bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/domains/recommendation/model"
)

// Rank computes the top categories of every dimension.
// An empty input yields empty lists, not an error.
func Rank(books []bookModel.Book) model.Stats {
	stats := model.NewStats()
	for _, d := range model.Dimensions {
		stats.Set(d, TopCategories(books, d, model.TopN))
	}
	return stats
}

// TopCategories counts the books carrying each value of dimension d (exact
// string match, author strings are not split) and returns the n most frequent,
// count descending, ties in first-seen order. Books lacking the attribute are
// skipped for this dimension only.
func TopCategories(books []bookModel.Book, d model.Dimension, n int) []model.CategoryCount {
	counts := make([]model.CategoryCount, 0)
	index := make(map[string]int)

	for _, book := range books {
		value, ok := model.Attribute(book, d)
		if !ok {
			continue
		}
		if i, seen := index[value]; seen {
			counts[i].Count++
			continue
		}
		index[value] = len(counts)
		counts = append(counts, model.CategoryCount{Item: value, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
