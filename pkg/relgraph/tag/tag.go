// Package tag turns raw sentence text into a tagged word sequence.
// Tagging is deterministic and total: every token receives exactly one tag.
package tag

import "github.com/cognitext/relgraph/pkg/relgraph/lexicon"

// Tag is a part-of-speech tag. The vocabulary is defined next to the
// lexicon, which maps words to candidate tags; it is re-exported here
// so the tagger and the downstream passes read tag.Noun.
type Tag = lexicon.Tag

const (
	Noun          = lexicon.Noun
	PluralNoun    = lexicon.PluralNoun
	ProperNoun    = lexicon.ProperNoun
	Pronoun       = lexicon.Pronoun
	PossPronoun   = lexicon.PossPronoun
	Possessive    = lexicon.Possessive
	Verb          = lexicon.Verb
	PastVerb      = lexicon.PastVerb
	Gerund        = lexicon.Gerund
	Participle    = lexicon.Participle
	PresentVerb   = lexicon.PresentVerb
	ThirdPerson   = lexicon.ThirdPerson
	Modal         = lexicon.Modal
	Adjective     = lexicon.Adjective
	Comparative   = lexicon.Comparative
	Superlative   = lexicon.Superlative
	Adverb        = lexicon.Adverb
	Determiner    = lexicon.Determiner
	Preposition   = lexicon.Preposition
	To            = lexicon.To
	Conjunction   = lexicon.Conjunction
	Cardinal      = lexicon.Cardinal
	Existential   = lexicon.Existential
	WhDeterminer  = lexicon.WhDeterminer
	WhPronoun     = lexicon.WhPronoun
	WhPossessive  = lexicon.WhPossessive
	SentenceClose = lexicon.SentenceClose
	Comma         = lexicon.Comma
	Colon         = lexicon.Colon
	OpenParen     = lexicon.OpenParen
	CloseParen    = lexicon.CloseParen
	OpenQuote     = lexicon.OpenQuote
	CloseQuote    = lexicon.CloseQuote
	Ellipsis      = lexicon.Ellipsis
)

// TaggedWord pairs a surface word with its tag. Immutable once produced.
type TaggedWord struct {
	Word string
	Tag  Tag
}
