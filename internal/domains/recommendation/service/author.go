package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// publisherFragments are imprint names the catalog sometimes glues onto the
// author field. Matching is case-insensitive on whole words.
var publisherFragments = []string{
	"Media Rodzina",
	"Wydawnictwo Literackie",
	"Wydawnictwo",
	"Wyd.",
}

var (
	lifespanPattern   = regexp.MustCompile(`\(\s*[0-9?]{0,4}\s*-\s*[0-9?]{0,4}\s*\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeAuthor is a best-effort cleanup of a raw catalog author string
// before it is used as a search filter. It is a heuristic, not a parser:
// it removes lifespan parentheses like "(1948- )", strips known publisher
// fragments, and collapses repeated name tokens (initials excepted). The ranking always groups on
// the raw value; only the outgoing query sees the cleaned one.
// When cleanup would leave nothing the raw value is returned trimmed.
func NormalizeAuthor(raw string) string {
	s := lifespanPattern.ReplaceAllString(raw, " ")

	for _, fragment := range publisherFragments {
		s = removeFold(s, fragment)
	}

	tokens := strings.Fields(whitespacePattern.ReplaceAllString(s, " "))
	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		key := strings.ToLower(strings.Trim(token, ",.;"))
		if key == "" {
			continue
		}
		// initials like "R." may legitimately repeat
		if utf8.RuneCountInString(key) > 2 {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		kept = append(kept, token)
	}

	cleaned := strings.Trim(strings.Join(kept, " "), " ,;")
	if cleaned == "" {
		return strings.TrimSpace(raw)
	}
	return cleaned
}

// removeFold deletes every case-insensitive occurrence of fragment that stands
// as a whole word sequence
func removeFold(s, fragment string) string {
	pattern := regexp.MustCompile(`(?i)(^|[\s,;])` + regexp.QuoteMeta(fragment) + `($|[\s,;])`)
	for {
		next := pattern.ReplaceAllString(s, "$1$2")
		if next == s {
			return s
		}
		s = next
	}
}
