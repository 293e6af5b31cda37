package symspell

import (
	"regexp"
	"strconv"
	"strings"
)

var wordPattern = regexp.MustCompile(`[^\W_]+['’]*[^\W_]*`)

// parseWords splits phrase into word tokens, lowercasing each unless
// preserveCase is set.
func parseWords(phrase string, preserveCase bool) []string {
	matches := wordPattern.FindAllString(phrase, -1)
	if preserveCase {
		return matches
	}
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return matches
}

// tryParseInt64 reports whether s parses as a signed 64-bit integer.
func tryParseInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

var acronymPattern = regexp.MustCompile(`^[A-Z0-9]{2,}$`)

// isAcronym reports whether w is all-caps alphanumerics of length ≥ 2.
func isAcronym(w string) bool {
	return acronymPattern.MatchString(w)
}
