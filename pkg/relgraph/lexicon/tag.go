package lexicon

// Tag is a part-of-speech tag. The set is fixed; values follow the
// Penn treebank naming so downstream rules can key on prefixes
// (e.g. "VB" covers all verb forms). The type lives here because the
// lexicon is the source of candidate tags; the tag package re-exports
// the vocabulary.
type Tag string

const (
	Noun          Tag = "NN"
	PluralNoun    Tag = "NNS"
	ProperNoun    Tag = "NNP"
	Pronoun       Tag = "PRP"
	PossPronoun   Tag = "PRP$"
	Possessive    Tag = "POS"
	Verb          Tag = "VB"  // base form
	PastVerb      Tag = "VBD" // finite past
	Gerund        Tag = "VBG"
	Participle    Tag = "VBN" // past participle
	PresentVerb   Tag = "VBP" // non-3rd-person present
	ThirdPerson   Tag = "VBZ" // 3rd-person singular present
	Modal         Tag = "MD"
	Adjective     Tag = "JJ"
	Comparative   Tag = "JJR"
	Superlative   Tag = "JJS"
	Adverb        Tag = "RB"
	Determiner    Tag = "DT"
	Preposition   Tag = "IN"
	To            Tag = "TO"
	Conjunction   Tag = "CC"
	Cardinal      Tag = "CD"
	Existential   Tag = "EX"
	WhDeterminer  Tag = "WDT"
	WhPronoun     Tag = "WP"
	WhPossessive  Tag = "WP$"
	SentenceClose Tag = "."
	Comma         Tag = ","
	Colon         Tag = ":"
	OpenParen     Tag = "("
	CloseParen    Tag = ")"
	OpenQuote     Tag = "``"
	CloseQuote    Tag = "''"
	Ellipsis      Tag = "..."
)

// IsVerb reports whether t is any verb form (excluding modals).
func (t Tag) IsVerb() bool {
	switch t {
	case Verb, PastVerb, Gerund, Participle, PresentVerb, ThirdPerson:
		return true
	}
	return false
}

// IsFiniteVerb reports whether t is a tensed verb form.
func (t Tag) IsFiniteVerb() bool {
	return t == PastVerb || t == PresentVerb || t == ThirdPerson
}

// IsNoun reports whether t is a noun form.
func (t Tag) IsNoun() bool {
	return t == Noun || t == PluralNoun || t == ProperNoun
}

// IsNominal reports whether t can sit inside a noun phrase.
func (t Tag) IsNominal() bool {
	switch t {
	case Determiner, Adjective, Comparative, Superlative,
		Noun, PluralNoun, ProperNoun, Pronoun, PossPronoun,
		Possessive, Cardinal, WhPossessive:
		return true
	}
	return false
}

// IsVerbal reports whether t can sit inside a verb phrase.
func (t Tag) IsVerbal() bool {
	return t.IsVerb() || t == Modal || t == Adverb
}

// IsAdjective reports whether t is an adjective form.
func (t Tag) IsAdjective() bool {
	return t == Adjective || t == Comparative || t == Superlative
}
