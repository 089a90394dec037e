package model

import (
	"strconv"
	"strings"
)

// IDWidth is the fixed width of catalog ids (data.bn.org.pl)
const IDWidth = 14

// Book is the bibliographic record served by the external catalog.
// Empty string fields mean the catalog did not provide the attribute.
type Book struct {
	ID                 string `json:"id"` // always NormalizeID'd
	Title              string `json:"title"`
	Author             string `json:"author"` // raw, possibly several names
	Genre              string `json:"genre"`
	Language           string `json:"language"`
	PublicationYear    string `json:"publicationYear"` // raw catalog value
	Publisher          string `json:"publisher"`
	PlaceOfPublication string `json:"placeOfPublication,omitempty"`
	ISBNIssn           string `json:"isbnIssn"`
	Kind               string `json:"kind,omitempty"`
	Domain             string `json:"domain,omitempty"`
	FormOfWork         string `json:"formOfWork,omitempty"`
	Subject            string `json:"subject,omitempty"`
}

// Year returns the publication year when the catalog value is a plain integer
func (b Book) Year() (int, bool) {
	raw := strings.TrimSpace(b.PublicationYear)
	if raw == "" {
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

// NormalizeID left-pads raw with '0' to IDWidth characters.
// Wider ids pass through untouched.
//
//	NormalizeID("123") == "00000000000123"
func NormalizeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= IDWidth {
		return raw
	}
	return strings.Repeat("0", IDWidth-len(raw)) + raw
}
