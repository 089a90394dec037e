package catalog

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"

	"bookshare-backend/internal/domains/book/model"
)

// SearchQuery is one category search against networks/bibs.json.
// Exactly one filter is expected to be set; the year range is used only
// when YearTo is non-zero.
type SearchQuery struct {
	Genre    string
	Author   string
	Language string
	YearFrom int
	YearTo   int
	Limit    int
}

// values encodes the dimension filter and limit. formOfWork is added by the client.
func (q SearchQuery) values() url.Values {
	v := url.Values{}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.Author != "" {
		v.Set("author", q.Author)
	}
	if q.Language != "" {
		v.Set("language", q.Language)
	}
	if q.YearTo != 0 {
		v.Set("yearFrom", strconv.Itoa(q.YearFrom))
		v.Set("yearTo", strconv.Itoa(q.YearTo))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Key is a stable, sorted encoding of the query, used for logs and cache keys
func (q SearchQuery) Key() string {
	return q.values().Encode()
}

// Raw API response types (internal)

type bibsResponse struct {
	NextPage string   `json:"nextPage"`
	Bibs     []rawBib `json:"bibs"`
}

type rawBib struct {
	ID                 flexString `json:"id"`
	Title              string     `json:"title"`
	Author             string     `json:"author"`
	Genre              string     `json:"genre"`
	Language           string     `json:"language"`
	PublicationYear    flexString `json:"publicationYear"`
	Publisher          string     `json:"publisher"`
	PlaceOfPublication string     `json:"placeOfPublication"`
	ISBNIssn           string     `json:"isbnIssn"`
	Kind               string     `json:"kind"`
	Domain             string     `json:"domain"`
	FormOfWork         string     `json:"formOfWork"`
	Subject            string     `json:"subject"`
}

func (r rawBib) toBook() model.Book {
	return model.Book{
		ID:                 model.NormalizeID(string(r.ID)),
		Title:              r.Title,
		Author:             r.Author,
		Genre:              r.Genre,
		Language:           r.Language,
		PublicationYear:    string(r.PublicationYear),
		Publisher:          r.Publisher,
		PlaceOfPublication: r.PlaceOfPublication,
		ISBNIssn:           r.ISBNIssn,
		Kind:               r.Kind,
		Domain:             r.Domain,
		FormOfWork:         r.FormOfWork,
		Subject:            r.Subject,
	}
}

// flexString accepts both JSON strings and numbers; the catalog is not
// consistent about ids and years.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
