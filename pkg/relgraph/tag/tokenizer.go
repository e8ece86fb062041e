package tag

import (
	"strings"
	"unicode"
)

// Token is a raw substring of the input with its position in the
// token sequence. Ephemeral: tokens only exist between tokenization
// and tagging.
type Token struct {
	Text string
	Pos  int
}

// apostrophes that get normalized to the canonical '\''.
const curlyApostrophes = "’ʼ"

// Tokenize splits a sentence into an ordered token sequence.
// Recognized classes: word clusters (letters/digits with internal
// hyphens or apostrophes, optional trailing apostrophe), decimal
// numbers, the ellipsis as a single token, and single
// punctuation/quote characters.
func Tokenize(text string) []Token {
	text = normalizeApostrophes(text)
	runes := []rune(text)

	var tokens []Token
	add := func(s string) {
		tokens = append(tokens, Token{Text: s, Pos: len(tokens)})
	}

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '…':
			add("…")
			i++

		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			add("…")
			i += 3
			// swallow any further dots in a long run
			for i < len(runes) && runes[i] == '.' {
				i++
			}

		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) ||
				(runes[j] == '.' && j+1 < len(runes) && unicode.IsDigit(runes[j+1]))) {
				j++
			}
			add(string(runes[i:j]))
			i = j

		case unicode.IsLetter(r):
			j := i
			for j < len(runes) {
				c := runes[j]
				if unicode.IsLetter(c) || unicode.IsDigit(c) {
					j++
					continue
				}
				// internal hyphen/apostrophe needs a letter or digit on both sides
				if (c == '-' || c == '\'') && j+1 < len(runes) &&
					(unicode.IsLetter(runes[j+1]) || unicode.IsDigit(runes[j+1])) {
					j += 2
					continue
				}
				break
			}
			// trailing apostrophe belongs to the word ("dogs'")
			if j < len(runes) && runes[j] == '\'' {
				j++
			}
			add(string(runes[i:j]))
			i = j

		default:
			add(string(r))
			i++
		}
	}

	return tokens
}

func normalizeApostrophes(s string) string {
	if !strings.ContainsAny(s, curlyApostrophes) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(curlyApostrophes, r) {
			return '\''
		}
		return r
	}, s)
}
