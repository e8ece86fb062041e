package tag

import (
	"strings"
	"unicode"
)

// suffixCandidates guesses candidate tags for a word the lexicon does
// not know. Returns nil when no suffix matches; the caller then falls
// back on capitalization.
func suffixCandidates(lower string) []Tag {
	if isAllDigits(lower) {
		return []Tag{Cardinal}
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return []Tag{Gerund, Noun}
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return []Tag{PastVerb, Participle}
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return []Tag{Adverb}
	case strings.HasSuffix(lower, "able"), strings.HasSuffix(lower, "ible"),
		strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ful"),
		strings.HasSuffix(lower, "less"):
		return []Tag{Adjective}
	case strings.HasSuffix(lower, "ize"), strings.HasSuffix(lower, "ify"):
		return []Tag{Verb}
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 2:
		return []Tag{PluralNoun, ThirdPerson}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}
