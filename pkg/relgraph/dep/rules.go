package dep

import (
	"strings"

	"github.com/cognitext/relgraph/pkg/relgraph/chunk"
	"github.com/cognitext/relgraph/pkg/relgraph/lemma"
	"github.com/cognitext/relgraph/pkg/relgraph/tag"
)

// patternRule is one entry of the ordered rule table. window is the
// chunk-type sequence that must start at the current position; the
// predicate inspects actual tags and words and emits edges. At each
// position rules are tried in order and the first rule that emits
// wins the position.
type patternRule struct {
	name   string
	window []chunk.Kind
	apply  func(p *parser, i int) bool
}

func (p *parser) runPatternRules() {
	rules := patternRules()
	for i := range p.chunks {
		for _, r := range rules {
			if !p.windowMatches(r.window, i) {
				continue
			}
			if r.apply(p, i) {
				break
			}
		}
	}
}

func (p *parser) windowMatches(window []chunk.Kind, i int) bool {
	if i+len(window) > len(p.chunks) {
		return false
	}
	for k, want := range window {
		if p.chunks[i+k].Kind != want {
			return false
		}
	}
	return true
}

// isPassive reports whether a verb phrase contains a be-form followed
// by a past participle, looking through negation particles ("was n't
// written").
func isPassive(c chunk.Chunk) bool {
	for i := 0; i+1 < len(c.Words); i++ {
		if !isBeWord(c.Words[i].Word) {
			continue
		}
		for j := i + 1; j < len(c.Words); j++ {
			w := c.Words[j]
			if w.Word == "n't" || strings.EqualFold(w.Word, "not") {
				continue
			}
			if w.Tag == tag.Participle {
				return true
			}
			break
		}
	}
	return false
}

func isBeWord(w string) bool {
	switch strings.ToLower(w) {
	case "be", "am", "is", "are", "was", "were", "been", "being":
		return true
	}
	return false
}

// isDummyDo reports whether the verb phrase is only a do-auxiliary.
func isDummyDo(c chunk.Chunk) bool {
	if len(c.Words) != 1 {
		return false
	}
	switch strings.ToLower(c.Words[0].Word) {
	case "do", "does", "did":
		return true
	}
	return false
}

func startsWithGerund(c chunk.Chunk) bool {
	return len(c.Words) > 0 && c.Words[0].Tag == tag.Gerund
}

func isSinglePronoun(c chunk.Chunk) bool {
	return len(c.Words) == 1 && c.Words[0].Tag == tag.Pronoun
}

// nearestBackward walks backward from i-1 within the attachment
// window, skipping consumed chunks, and returns the index of the first
// chunk of the wanted kind, or -1.
func (p *parser) nearestBackward(i int, want chunk.Kind) int {
	steps := 0
	for j := i - 1; j >= 0 && steps < attachWindow; j-- {
		if p.consumed[j] {
			continue
		}
		steps++
		if p.chunks[j].Kind == want {
			return j
		}
	}
	return -1
}

// adjacentSubject returns the noun phrase directly before i, looking
// through consumed chunks (parentheticals, enumerations) but nothing
// else.
func (p *parser) adjacentSubject(i int) int {
	for j := i - 1; j >= 0 && j >= i-1-2*attachWindow; j-- {
		if p.consumed[j] {
			continue
		}
		if p.chunks[j].Kind == chunk.NounPhrase {
			return j
		}
		return -1
	}
	return -1
}

func subjectRel(vp chunk.Chunk) string {
	if isPassive(vp) {
		return "nsubj:pass"
	}
	return "nsubj"
}

func patternRules() []patternRule {
	np, vp, o := chunk.NounPhrase, chunk.VerbPhrase, chunk.Other
	return []patternRule{
		// gerund phrase acting as subject: "Running the system
		// improves results". The gerund's object is consumed so the
		// clause verb does not mistake it for its subject.
		{"gerund-subject", []chunk.Kind{vp, np, vp}, func(p *parser, i int) bool {
			g, obj, v := p.chunks[i], p.chunks[i+1], p.chunks[i+2]
			if !startsWithGerund(g) || startsWithGerund(v) {
				return false
			}
			p.emit(phrase(v), subjectRel(v), phrase(g))
			p.emit(phrase(g), "dobj", phrase(obj))
			p.consumed[i+1] = true
			return true
		}},

		// bare pronoun subject
		{"pronoun-subject", []chunk.Kind{np, vp}, func(p *parser, i int) bool {
			s, v := p.chunks[i], p.chunks[i+1]
			if !isSinglePronoun(s) {
				return false
			}
			p.emit(phrase(v), subjectRel(v), phrase(s))
			return true
		}},

		// subject–verb, active or passive; subject is the adjacent
		// noun phrase, looking through consumed parentheticals
		{"subject-verb", []chunk.Kind{vp}, func(p *parser, i int) bool {
			v := p.chunks[i]
			j := p.adjacentSubject(i)
			if j < 0 {
				return false
			}
			p.emit(phrase(v), subjectRel(v), phrase(p.chunks[j]))
			// a rule win ends the position, so the direct object is
			// claimed here as well
			if p.kind(i+1) == np && !isDummyDo(v) {
				p.emit(phrase(v), "dobj", phrase(p.chunks[i+1]))
			}
			return true
		}},

		// verb–object where no subject was found
		{"verb-object", []chunk.Kind{vp, np}, func(p *parser, i int) bool {
			v := p.chunks[i]
			if isDummyDo(v) {
				return false
			}
			p.emit(phrase(v), "dobj", phrase(p.chunks[i+1]))
			return true
		}},

		// relative clause without comma: "the team that wrote it"
		{"relative-clause", []chunk.Kind{np, o, vp}, func(p *parser, i int) bool {
			rel := p.otherWord(i + 1)
			if rel != "that" && rel != "who" && rel != "which" {
				return false
			}
			ante, v := p.chunks[i], p.chunks[i+2]
			p.emit(phrase(v), subjectRel(v), phrase(ante))
			p.emit(phrase(ante), "ref", rel)
			return true
		}},

		// relative clause with comma: "the team, which wrote it"
		{"relative-clause-comma", []chunk.Kind{np, o, o, vp}, func(p *parser, i int) bool {
			if p.otherWord(i+1) != "," {
				return false
			}
			rel := p.otherWord(i + 2)
			if rel != "who" && rel != "which" {
				return false
			}
			ante, v := p.chunks[i], p.chunks[i+3]
			p.emit(phrase(v), subjectRel(v), phrase(ante))
			p.emit(phrase(ante), "ref", rel)
			return true
		}},

		// possessive relative: "the author whose book sold"
		{"relative-whose", []chunk.Kind{np, np, vp}, func(p *parser, i int) bool {
			owned := p.chunks[i+1]
			if len(owned.Words) == 0 || owned.Words[0].Tag != tag.WhPossessive {
				return false
			}
			owner, v := p.chunks[i], p.chunks[i+2]
			p.emit(phrase(owned), "poss", phrase(owner))
			p.emit(phrase(v), subjectRel(v), phrase(owned))
			return true
		}},

		// passive agent: "by NP" attached to the nearest passive verb
		{"passive-agent", []chunk.Kind{o, np}, func(p *parser, i int) bool {
			if p.otherWord(i) != "by" {
				return false
			}
			j := p.nearestBackward(i, vp)
			if j < 0 || !isPassive(p.chunks[j]) {
				return false
			}
			p.emit(phrase(p.chunks[j]), "obl:agent", phrase(p.chunks[i+1]))
			return true
		}},

		// noun-phrase coordination; suppressed when flanked by verb
		// phrases on both sides (clause-level coordination)
		{"np-coordination", []chunk.Kind{np, o, np}, func(p *parser, i int) bool {
			w := p.otherWord(i + 1)
			if !isConjWord(w) && w != "," {
				return false
			}
			if p.kind(i-1) == vp && p.kind(i+3) == vp {
				return false
			}
			conj := w
			if conj == "," {
				conj = p.lastConj
			} else {
				p.lastConj = conj
			}
			p.emit(phrase(p.chunks[i]), "conj_"+conj, phrase(p.chunks[i+2]))
			return true
		}},

		// verb-phrase coordination
		{"vp-coordination", []chunk.Kind{vp, o, vp}, func(p *parser, i int) bool {
			w := p.otherWord(i + 1)
			if !isConjWord(w) {
				return false
			}
			p.lastConj = w
			p.emit(phrase(p.chunks[i]), "conj_"+w, phrase(p.chunks[i+2]))
			return true
		}},

		// gerund verbal modifier: "the cost of running it"
		{"gerund-modifier", []chunk.Kind{np, o, vp}, func(p *parser, i int) bool {
			if p.otherWord(i+1) != "of" || !startsWithGerund(p.chunks[i+2]) {
				return false
			}
			p.emit(phrase(p.chunks[i]), "prep_of", phrase(p.chunks[i+2]))
			return true
		}},

		// prepositional attachment: nearest preceding verb phrase,
		// else nearest preceding noun phrase
		{"prep-attachment", []chunk.Kind{o, np}, func(p *parser, i int) bool {
			w := p.otherWord(i)
			if !isPrepositionChunk(p.chunks[i]) {
				return false
			}
			rel := "prep_" + lemma.Word(w)
			if j := p.nearestBackward(i, vp); j >= 0 {
				p.emit(phrase(p.chunks[j]), rel, phrase(p.chunks[i+1]))
				return true
			}
			if j := p.nearestBackward(i, np); j >= 0 {
				p.emit(phrase(p.chunks[j]), rel, phrase(p.chunks[i+1]))
				return true
			}
			return false
		}},
	}
}

func isPrepositionChunk(c chunk.Chunk) bool {
	return c.Kind == chunk.Other && len(c.Words) == 1 &&
		(c.Words[0].Tag == tag.Preposition || c.Words[0].Tag == tag.To)
}
