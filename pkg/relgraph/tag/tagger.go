package tag

import (
	"strings"
	"unicode"

	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
)

// Tagger assigns exactly one tag to every token. The quote open/close
// toggles are per-Tagger state: a Tagger is scoped to one document or
// session, and reprocessing sentences out of order changes quote tags.
// Share one Tagger per ordered text stream, never across streams.
type Tagger struct {
	lex          *lexicon.Lexicon
	contractions map[string][]TaggedWord
	rules        []contextRule

	singleOpen bool
	doubleOpen bool
}

// NewTagger creates a Tagger over the given lexicon with the built-in
// contraction table and contextual rule set.
func NewTagger(lex *lexicon.Lexicon) *Tagger {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Tagger{
		lex:          lex,
		contractions: defaultContractions(),
		rules:        contextRules(),
	}
}

// ResetQuotes clears the open-quote toggles, e.g. at a document
// boundary.
func (t *Tagger) ResetQuotes() {
	t.singleOpen = false
	t.doubleOpen = false
}

// Tag tokenizes a sentence and tags every token.
func (t *Tagger) Tag(text string) []TaggedWord {
	return t.TagTokens(Tokenize(text))
}

// pending is a word awaiting contextual resolution. Contraction
// expansions, literal classes and possessives arrive with their tag
// already fixed.
type pending struct {
	word  string
	fixed Tag // "" when unresolved
	cand  []Tag
	first bool // sentence-initial token
}

// TagTokens tags an already tokenized sequence.
func (t *Tagger) TagTokens(tokens []Token) []TaggedWord {
	seq := make([]pending, 0, len(tokens))

	for _, tok := range tokens {
		word := tok.Text
		lower := strings.ToLower(word)

		// 1. contraction table: one token expands to several words,
		// the first mirroring the original casing.
		if exp, ok := t.contractions[lower]; ok {
			for k, tw := range exp {
				w := tw.Word
				if k == 0 {
					w = mirrorCase(word, w)
				}
				seq = append(seq, pending{word: w, fixed: tw.Tag})
			}
			continue
		}

		// 2. fixed literal classes
		if fixed, ok := t.literalTag(word); ok {
			seq = append(seq, pending{word: word, fixed: fixed})
			continue
		}

		// 3. possessive short-circuit
		if isPossessive(lower) {
			seq = append(seq, pending{word: word, fixed: Possessive})
			continue
		}

		// 4/5. lexicon candidates, else suffix heuristics
		cand := t.lex.Candidates(word)
		if len(cand) == 0 {
			cand = suffixCandidates(lower)
		}
		seq = append(seq, pending{word: word, cand: cand, first: tok.Pos == 0})
	}

	// contextual pass, left to right
	out := make([]TaggedWord, len(seq))
	for i := range seq {
		out[i] = TaggedWord{Word: seq[i].word, Tag: t.resolve(seq, out, i)}
	}
	return out
}

// resolve picks the tag for seq[i] given everything tagged so far.
func (t *Tagger) resolve(seq []pending, out []TaggedWord, i int) Tag {
	p := seq[i]
	if p.fixed != "" {
		return p.fixed
	}

	rc := &ruleCtx{lex: t.lex, seq: seq, out: out, i: i,
		word: p.word, lower: strings.ToLower(p.word), cand: p.cand}
	for _, r := range t.rules {
		if got, ok := r.apply(rc); ok {
			return got
		}
	}

	// 6. fallback: first lexicon/suffix candidate, else proper noun
	// for capitalized non-initial words, else common noun.
	if len(p.cand) > 0 {
		return p.cand[0]
	}
	if !p.first && startsUpper(p.word) {
		return ProperNoun
	}
	return Noun
}

// literalTag handles ellipsis, sentence punctuation, parentheses and
// quotes. Quotes flip the per-Tagger open/close toggles, independently
// for single and double quotes.
func (t *Tagger) literalTag(word string) (Tag, bool) {
	switch word {
	case "…":
		return Ellipsis, true
	case ".", "!", "?":
		return SentenceClose, true
	case ",":
		return Comma, true
	case ";", ":":
		return Colon, true
	case "(", "[", "{":
		return OpenParen, true
	case ")", "]", "}":
		return CloseParen, true
	case "\"", "“", "”":
		t.doubleOpen = !t.doubleOpen
		if t.doubleOpen {
			return OpenQuote, true
		}
		return CloseQuote, true
	case "'", "‘":
		t.singleOpen = !t.singleOpen
		if t.singleOpen {
			return OpenQuote, true
		}
		return CloseQuote, true
	}
	return "", false
}

func isPossessive(lower string) bool {
	if strings.HasSuffix(lower, "'s") && len(lower) > 2 {
		return true
	}
	if strings.HasSuffix(lower, "s'") && len(lower) > 2 {
		return true
	}
	return false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// mirrorCase copies the leading-letter casing of src onto dst.
func mirrorCase(src, dst string) string {
	if startsUpper(src) && len(dst) > 0 {
		return strings.ToUpper(dst[:1]) + dst[1:]
	}
	return dst
}

func defaultContractions() map[string][]TaggedWord {
	table := map[string][]TaggedWord{
		"cannot": {{"can", Modal}, {"not", Adverb}},
		"let's":  {{"let", Verb}, {"us", Pronoun}},
		"i'm":    {{"i", Pronoun}, {"am", PresentVerb}},
		"it's":   {{"it", Pronoun}, {"is", ThirdPerson}},
		"he's":   {{"he", Pronoun}, {"is", ThirdPerson}},
		"she's":  {{"she", Pronoun}, {"is", ThirdPerson}},
		"that's": {{"that", Determiner}, {"is", ThirdPerson}},
		"won't":  {{"will", Modal}, {"n't", Adverb}},
		"can't":  {{"can", Modal}, {"n't", Adverb}},
	}
	for _, p := range []string{"we", "they", "you"} {
		table[p+"'re"] = []TaggedWord{{p, Pronoun}, {"are", PresentVerb}}
	}
	for _, p := range []string{"i", "we", "they", "you"} {
		table[p+"'ve"] = []TaggedWord{{p, Pronoun}, {"have", PresentVerb}}
	}
	for _, p := range []string{"i", "we", "they", "you", "he", "she", "it"} {
		table[p+"'ll"] = []TaggedWord{{p, Pronoun}, {"will", Modal}}
		table[p+"'d"] = []TaggedWord{{p, Pronoun}, {"would", Modal}}
	}
	neg := map[string]TaggedWord{
		"don't":     {"do", PresentVerb},
		"doesn't":   {"does", ThirdPerson},
		"didn't":    {"did", PastVerb},
		"isn't":     {"is", ThirdPerson},
		"aren't":    {"are", PresentVerb},
		"wasn't":    {"was", PastVerb},
		"weren't":   {"were", PastVerb},
		"hasn't":    {"has", ThirdPerson},
		"haven't":   {"have", PresentVerb},
		"hadn't":    {"had", PastVerb},
		"couldn't":  {"could", Modal},
		"wouldn't":  {"would", Modal},
		"shouldn't": {"should", Modal},
		"mustn't":   {"must", Modal},
	}
	for form, head := range neg {
		table[form] = []TaggedWord{head, {"n't", Adverb}}
	}
	return table
}
