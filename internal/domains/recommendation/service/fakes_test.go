package service

import (
	"context"
	"sync"

	bookModel "bookshare-backend/internal/domains/book/model"
	reviewModel "bookshare-backend/internal/domains/review/model"
	"bookshare-backend/internal/infrastructure/catalog"
)

// fakeCatalog serves books by normalized id and canned search answers.
// Unknown ids answer catalog.ErrServer.
type fakeCatalog struct {
	mu       sync.Mutex
	books    map[string]bookModel.Book
	search   map[string][]bookModel.Book // keyed by SearchQuery.Key()
	failAll  bool
	failKeys map[string]bool

	lookups  []string
	searches []catalog.SearchQuery
}

func newFakeCatalog(books ...bookModel.Book) *fakeCatalog {
	f := &fakeCatalog{
		books:    make(map[string]bookModel.Book),
		search:   make(map[string][]bookModel.Book),
		failKeys: make(map[string]bool),
	}
	for _, b := range books {
		f.books[b.ID] = b
	}
	return f
}

func (f *fakeCatalog) GetBook(_ context.Context, id string) (*bookModel.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id = bookModel.NormalizeID(id)
	f.lookups = append(f.lookups, id)
	if f.failAll {
		return nil, catalog.ErrServer
	}
	b, ok := f.books[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &b, nil
}

func (f *fakeCatalog) Search(_ context.Context, q catalog.SearchQuery) ([]bookModel.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, q)
	if f.failAll || f.failKeys[q.Key()] {
		return nil, catalog.ErrServer
	}
	return f.search[q.Key()], nil
}

func (f *fakeCatalog) searchFor(q catalog.SearchQuery) (catalog.SearchQuery, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.searches {
		if s.Key() == q.Key() {
			return s, true
		}
	}
	return catalog.SearchQuery{}, false
}

type fakeReviews struct {
	rated []reviewModel.RatedBook
	err   error
}

func (f *fakeReviews) HighlyRatedBooks(context.Context, string) ([]reviewModel.RatedBook, error) {
	return f.rated, f.err
}

func book(id, genre, author, language, year string) bookModel.Book {
	return bookModel.Book{
		ID:              bookModel.NormalizeID(id),
		Title:           "Book " + id,
		Genre:           genre,
		Author:          author,
		Language:        language,
		PublicationYear: year,
	}
}
