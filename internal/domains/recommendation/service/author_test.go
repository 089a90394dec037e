package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Sapkowski, Andrzej", "Sapkowski, Andrzej"},
		{"Lem, Stanisław (1921-2006)", "Lem, Stanisław"},
		{"Sapkowski, Andrzej (1948- )", "Sapkowski, Andrzej"},
		{"Rowling, J. K. Media Rodzina", "Rowling, J. K."},
		{"Rowling J. K. Rowling", "Rowling J. K."},
		{"  Tolkien,   J. R. R.  ", "Tolkien, J. R. R."},
		{"Media Rodzina", "Media Rodzina"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAuthor(tt.raw))
		})
	}
}
