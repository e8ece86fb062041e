package tag

import (
	"strings"

	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
)

// contextRule is one entry of the ordered disambiguation table. Rules
// run first-match-wins, and with one exception (participle-as-adjective)
// every rule is gated on its target tag being among the word's
// candidates, so reordering a rule can change results but never
// produce a tag the lexicon forbids.
type contextRule struct {
	name  string
	apply func(rc *ruleCtx) (Tag, bool)
}

// ruleCtx exposes the tagging state a rule may inspect: the word under
// consideration, its candidates, everything tagged so far, and raw
// lookahead.
type ruleCtx struct {
	lex   *lexicon.Lexicon
	seq   []pending
	out   []TaggedWord
	i     int
	word  string
	lower string
	cand  []Tag
}

func (rc *ruleCtx) has(t Tag) bool {
	for _, c := range rc.cand {
		if c == t {
			return true
		}
	}
	return false
}

// prev returns the previous tagged word, looking through a trailing
// negation particle ("n't", "not") so that rules read "was n't
// written" the same as "was written".
func (rc *ruleCtx) prev() (TaggedWord, bool) {
	for j := rc.i - 1; j >= 0; j-- {
		w := rc.out[j]
		if w.Word == "n't" || strings.EqualFold(w.Word, "not") {
			continue
		}
		return w, true
	}
	return TaggedWord{}, false
}

func (rc *ruleCtx) prevTag() Tag {
	if w, ok := rc.prev(); ok {
		return w.Tag
	}
	return ""
}

func (rc *ruleCtx) prevWordIs(words ...string) bool {
	w, ok := rc.prev()
	if !ok {
		return false
	}
	for _, s := range words {
		if strings.EqualFold(w.Word, s) {
			return true
		}
	}
	return false
}

func (rc *ruleCtx) nextWord() string {
	if rc.i+1 < len(rc.seq) {
		return rc.seq[rc.i+1].word
	}
	return ""
}

// nextCand returns the lexicon (or suffix) candidates of the next raw
// word. Lookahead reads candidates, never assigned tags: the next word
// is not tagged yet.
func (rc *ruleCtx) nextCand() []Tag {
	if rc.i+1 >= len(rc.seq) {
		return nil
	}
	n := rc.seq[rc.i+1]
	if n.fixed != "" {
		return []Tag{n.fixed}
	}
	cand := rc.lex.Candidates(n.word)
	if len(cand) == 0 {
		cand = suffixCandidates(strings.ToLower(n.word))
	}
	return cand
}

func (rc *ruleCtx) nextHas(pred func(Tag) bool) bool {
	for _, t := range rc.nextCand() {
		if pred(t) {
			return true
		}
	}
	return false
}

func (rc *ruleCtx) nextNounish() bool {
	return rc.nextHas(func(t Tag) bool {
		return t.IsNoun() || t == Determiner || t.IsAdjective() ||
			t == PossPronoun || t == Cardinal
	})
}

// nextUnknown reports whether a next word exists that neither the
// lexicon nor the suffix heuristics have candidates for. Such a word
// resolves to a noun tag at fallback time.
func (rc *ruleCtx) nextUnknown() bool {
	return rc.i+1 < len(rc.seq) && len(rc.nextCand()) == 0
}

func (rc *ruleCtx) nextVerbish() bool {
	return rc.nextHas(func(t Tag) bool { return t.IsVerb() || t == Modal })
}

func (rc *ruleCtx) nextFinite() bool {
	return rc.nextHas(func(t Tag) bool { return t.IsFiniteVerb() })
}

// atClauseStart reports whether the current word opens a sentence or
// follows sentence punctuation.
func (rc *ruleCtx) atClauseStart() bool {
	if rc.i == 0 {
		return true
	}
	switch rc.out[rc.i-1].Tag {
	case SentenceClose, Colon, Ellipsis:
		return true
	}
	return false
}

func isBeForm(w string) bool {
	switch strings.ToLower(w) {
	case "be", "am", "is", "are", "was", "were", "been", "being":
		return true
	}
	return false
}

func isHaveForm(w string) bool {
	switch strings.ToLower(w) {
	case "have", "has", "had", "having":
		return true
	}
	return false
}

func (rc *ruleCtx) prevBeForm() bool {
	w, ok := rc.prev()
	return ok && isBeForm(w.Word)
}

func (rc *ruleCtx) prevHaveForm() bool {
	w, ok := rc.prev()
	return ok && isHaveForm(w.Word)
}

// contextRules builds the ordered rule table. The order is the
// priority order; do not sort.
func contextRules() []contextRule {
	return []contextRule{
		// --- question inversion: "Does the team run?" — an aux at
		// clause start followed by a subject makes an ambiguous verb
		// a base form.
		{"question-inversion", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(Verb) || rc.i < 2 {
				return "", false
			}
			subj := rc.out[rc.i-1].Tag
			if subj != Pronoun && subj != Determiner && !subj.IsNoun() {
				return "", false
			}
			aux := rc.out[rc.i-2]
			if !aux.Tag.IsFiniteVerb() && aux.Tag != Modal {
				return "", false
			}
			if lw := strings.ToLower(aux.Word); lw != "do" && lw != "does" &&
				lw != "did" && aux.Tag != Modal && !isBeForm(aux.Word) {
				return "", false
			}
			if rc.i != 2 && !isClauseOpener(rc.out, rc.i-2) {
				return "", false
			}
			return Verb, true
		}},

		// --- comparative/superlative after copula
		{"comparative-after-copula", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevBeForm() && rc.has(Comparative) {
				return Comparative, true
			}
			return "", false
		}},
		{"superlative-after-copula", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevBeForm() && rc.has(Superlative) {
				return Superlative, true
			}
			return "", false
		}},

		// --- gerund as subject: clause-initial -ing word followed by
		// a finite verb acts as a noun ("Running helps").
		{"gerund-subject", func(rc *ruleCtx) (Tag, bool) {
			if rc.atClauseStart() && rc.has(Gerund) && rc.has(Noun) &&
				(rc.nextFinite() || nextIsBe(rc)) {
				return Noun, true
			}
			return "", false
		}},

		// --- word-specific heuristics
		{"there", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower != "there" {
				return "", false
			}
			if nextIsBe(rc) && rc.has(Existential) {
				return Existential, true
			}
			return Adverb, true
		}},
		{"to", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower != "to" {
				return "", false
			}
			if rc.nextVerbish() && !rc.nextNounish() {
				return To, true
			}
			return Preposition, true
		}},
		{"her", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower != "her" {
				return "", false
			}
			if rc.nextNounish() {
				return PossPronoun, true
			}
			return Pronoun, true
		}},
		{"that-relative", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower != "that" || !rc.has(WhDeterminer) {
				return "", false
			}
			if rc.prevTag().IsNoun() && rc.nextVerbish() && !rc.nextNounish() {
				return WhDeterminer, true
			}
			return "", false
		}},
		{"that-determiner", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower != "that" || !rc.has(Determiner) {
				return "", false
			}
			if rc.nextNounish() {
				return Determiner, true
			}
			return "", false
		}},
		{"that-complement", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower == "that" && rc.has(Preposition) && rc.prevTag().IsVerb() {
				return Preposition, true
			}
			return "", false
		}},
		{"which", func(rc *ruleCtx) (Tag, bool) {
			if rc.lower == "which" && rc.has(WhDeterminer) {
				return WhDeterminer, true
			}
			return "", false
		}},

		// --- modal vs noun ("the can" vs "can run")
		{"modal-as-noun", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(Modal) || !rc.has(Noun) {
				return "", false
			}
			if pt := rc.prevTag(); pt == Determiner || pt.IsAdjective() || pt == PossPronoun {
				return Noun, true
			}
			return "", false
		}},
		{"modal-before-verb", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Modal) && rc.nextVerbish() {
				return Modal, true
			}
			return "", false
		}},

		// --- auxiliary "do" + base verb
		{"do-auxiliary", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Verb) && rc.prevWordIs("do", "does", "did") {
				return Verb, true
			}
			return "", false
		}},
		{"base-after-to", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Verb) && rc.i > 0 && rc.out[rc.i-1].Tag == To {
				return Verb, true
			}
			return "", false
		}},
		{"base-after-modal", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Verb) && rc.prevTag() == Modal {
				return Verb, true
			}
			return "", false
		}},

		// --- copula family. Past participle wins over gerund when
		// both are possible after "be" ("was written", not gerund).
		{"copula-adverb", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevBeForm() && rc.has(Adverb) && strings.HasSuffix(rc.lower, "ly") {
				return Adverb, true
			}
			return "", false
		}},
		{"copula-participle", func(rc *ruleCtx) (Tag, bool) {
			if (rc.prevBeForm() || rc.prevHaveForm()) && rc.has(Participle) {
				return Participle, true
			}
			return "", false
		}},
		{"copula-gerund", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevBeForm() && rc.has(Gerund) {
				return Gerund, true
			}
			return "", false
		}},
		{"copula-adjective", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevBeForm() && rc.has(Adjective) {
				return Adjective, true
			}
			return "", false
		}},

		// --- participle after progressive ("is being reviewed")
		{"participle-after-progressive", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevTag() == Gerund && rc.has(Participle) {
				return Participle, true
			}
			return "", false
		}},

		// --- subject–verb number agreement. The carve-out: an s-word
		// after a singular noun is a compound tail, not a finite verb,
		// when a known verb follows later ("the security measures
		// include…").
		{"agreement-singular-subject", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(ThirdPerson) || !rc.has(PluralNoun) {
				return "", false
			}
			pt := rc.prevTag()
			if pt != Noun && pt != ProperNoun {
				return "", false
			}
			if rc.nextKnownVerb() {
				return PluralNoun, true
			}
			return ThirdPerson, true
		}},
		{"agreement-plural-subject", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(PresentVerb) && rc.prevTag() == PluralNoun {
				return PresentVerb, true
			}
			return "", false
		}},

		// --- pronoun-subject agreement
		{"agreement-third-pronoun", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(ThirdPerson) && rc.prevWordIs("he", "she", "it") {
				return ThirdPerson, true
			}
			return "", false
		}},
		{"agreement-plain-pronoun", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(PresentVerb) && rc.prevWordIs("i", "you", "we", "they") {
				return PresentVerb, true
			}
			return "", false
		}},

		// --- proper-noun propagation across capitalized runs
		{"proper-propagation", func(rc *ruleCtx) (Tag, bool) {
			if rc.prevTag() == ProperNoun && startsUpper(rc.word) {
				return ProperNoun, true
			}
			return "", false
		}},

		// --- participle as adjective inside a noun-phrase start ("the
		// approved drug"). The one rule allowed to leave the candidate
		// set: a participle converts to adjective categorically. Blocked
		// after have-auxiliaries ("has approved") and after subjects
		// ("the team approved drugs"). A candidate-less next word counts
		// as nominal: the fallback will tag it as a noun anyway.
		{"participle-as-adjective", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(Participle) || rc.prevHaveForm() {
				return "", false
			}
			if !rc.nextNounish() && !rc.nextUnknown() {
				return "", false
			}
			if pt := rc.prevTag(); pt == Determiner || pt.IsAdjective() ||
				pt == PossPronoun || pt == Possessive {
				return Adjective, true
			}
			return "", false
		}},

		// --- modal after a subject
		{"modal-after-subject", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(Modal) {
				return "", false
			}
			if pt := rc.prevTag(); pt.IsNoun() || pt == Pronoun {
				return Modal, true
			}
			return "", false
		}},

		// --- object pronouns after verbs/prepositions
		{"object-pronoun", func(rc *ruleCtx) (Tag, bool) {
			if !rc.has(Pronoun) {
				return "", false
			}
			switch rc.lower {
			case "me", "him", "us", "them":
				return Pronoun, true
			}
			return "", false
		}},

		// --- nouns after determiners/adjectives/possessives
		{"determiner-noun", func(rc *ruleCtx) (Tag, bool) {
			pt := rc.prevTag()
			gate := pt == Determiner || pt.IsAdjective() ||
				pt == PossPronoun || pt == Possessive
			if !gate {
				return "", false
			}
			if rc.has(Noun) {
				return Noun, true
			}
			if rc.has(PluralNoun) {
				return PluralNoun, true
			}
			return "", false
		}},

		// --- plural object after a finite verb ("regulates drugs")
		{"object-plural", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(PluralNoun) && rc.prevTag().IsFiniteVerb() {
				return PluralNoun, true
			}
			return "", false
		}},

		// --- prepositional lead-in
		{"preposition-lead-in", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Preposition) && rc.lower != "that" && rc.nextNounish() {
				return Preposition, true
			}
			return "", false
		}},

		// --- final fallback inside the table: adverb after a finite
		// verb ("runs fast")
		{"adverb-after-verb", func(rc *ruleCtx) (Tag, bool) {
			if rc.has(Adverb) && rc.prevTag().IsFiniteVerb() {
				return Adverb, true
			}
			return "", false
		}},
	}
}

func nextIsBe(rc *ruleCtx) bool {
	return isBeForm(rc.nextWord())
}

// nextKnownVerb reports whether the word after next resolves to a
// lexicon-known verb, which signals the current s-word is a compound
// noun tail rather than the clause's finite verb.
func (rc *ruleCtx) nextKnownVerb() bool {
	next := rc.nextWord()
	if next == "" {
		return false
	}
	for _, t := range rc.lex.Candidates(next) {
		if t.IsVerb() || t == Modal {
			return true
		}
	}
	return false
}

// isClauseOpener reports whether out[j] is the first word of its
// clause.
func isClauseOpener(out []TaggedWord, j int) bool {
	if j == 0 {
		return true
	}
	switch out[j-1].Tag {
	case SentenceClose, Colon, Ellipsis:
		return true
	}
	return false
}
