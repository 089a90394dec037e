package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "00000000000123"},
		{"1", "00000000000001"},
		{"", "00000000000000"},
		{"00000000000123", "00000000000123"},
		{"12345678901234", "12345678901234"},
		{"1234567890123456", "1234567890123456"},
		{" 42 ", "00000000000042"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.in))
		})
	}
}

func TestNormalizeID_PadsEveryShortInput(t *testing.T) {
	for n := 1; n < IDWidth; n++ {
		raw := strings.Repeat("7", n)
		got := NormalizeID(raw)

		assert.Len(t, got, IDWidth)
		assert.True(t, strings.HasSuffix(got, raw))
		assert.Equal(t, strings.Repeat("0", IDWidth-n), got[:IDWidth-n])
	}
}

func TestBook_Year(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"1994", 1994, true},
		{" 2005 ", 2005, true},
		{"", 0, false},
		{"[1994]", 0, false},
		{"cop. 2001", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			year, ok := Book{PublicationYear: tt.raw}.Year()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, year)
		})
	}
}
