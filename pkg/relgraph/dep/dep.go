// Package dep derives typed dependency edges from a chunk sequence.
// Parsing runs in two passes — stateful enumeration detection, then an
// ordered pattern-rule table — followed by coordination propagation
// and a final structural dedup.
package dep

import (
	"strings"

	"github.com/cognitext/relgraph/pkg/relgraph/chunk"
)

// Edge is a directed, labeled relation between two phrases. Phrases
// are the lemmatized chunk texts (noun phrases) or head-verb lemmas
// (verb phrases).
type Edge struct {
	Head string
	Rel  string
	Dep  string
}

// Result holds the parse output for one chunk sequence.
type Result struct {
	Edges    []Edge
	Acronyms map[string]string
}

// backward attachment searches never look further than this many
// chunks.
const attachWindow = 5

type parser struct {
	chunks   []chunk.Chunk
	consumed map[int]bool
	edges    []Edge
	acronyms map[string]string
	lastConj string
}

// Parse derives the dependency edges for an ordered chunk sequence.
func Parse(chunks []chunk.Chunk) Result {
	p := &parser{
		chunks:   chunks,
		consumed: make(map[int]bool),
		acronyms: make(map[string]string),
		lastConj: "and",
	}

	p.detectAcronyms()
	p.detectEnumerations()
	p.runPatternRules()

	edges := propagateCoordination(p.edges)
	return Result{Edges: dedupe(edges), Acronyms: p.acronyms}
}

// phrase returns the representative name of a chunk for edge
// endpoints: head-verb lemma for verb phrases, lemmatized concept for
// noun phrases, lowercase surface for anything else.
func phrase(c chunk.Chunk) string {
	switch c.Kind {
	case chunk.VerbPhrase:
		return c.HeadLemma()
	case chunk.NounPhrase:
		return c.Lemma
	}
	return strings.ToLower(c.Text)
}

func (p *parser) emit(head, rel, dep string) {
	if head == "" || dep == "" || head == dep {
		return
	}
	p.edges = append(p.edges, Edge{Head: head, Rel: rel, Dep: dep})
}

func (p *parser) kind(i int) chunk.Kind {
	if i < 0 || i >= len(p.chunks) {
		return chunk.Kind(-1)
	}
	return p.chunks[i].Kind
}

func (p *parser) otherWord(i int) string {
	if i < 0 || i >= len(p.chunks) || p.chunks[i].Kind != chunk.Other {
		return ""
	}
	return strings.ToLower(p.chunks[i].Text)
}

// detectAcronyms links acronyms to their expansions in either order:
// "FDA ( Food and Drug Administration )" or "Food and Drug
// Administration ( FDA )". Each match records an acronym table entry,
// emits a ref edge, and marks the parenthetical consumed so backward
// subject searches step over it.
func (p *parser) detectAcronyms() {
	for i := 0; i+2 < len(p.chunks); i++ {
		c := p.chunks[i]
		if c.Kind != chunk.NounPhrase || p.otherWord(i+1) != "(" {
			continue
		}

		// acronym first, expansion parenthesized
		if isAcronym(c.Concept) {
			close := -1
			for j := i + 2; j < len(p.chunks) && j <= i+2+2*attachWindow; j++ {
				if p.otherWord(j) == ")" {
					close = j
					break
				}
			}
			if close < 0 || close == i+2 {
				continue
			}

			parts := make([]string, 0, close-i-2)
			for j := i + 2; j < close; j++ {
				parts = append(parts, p.chunks[j].Text)
			}
			expansion := strings.Join(parts, " ")

			p.acronyms[c.Concept] = expansion
			p.emit(c.Concept, "ref", expansion)
			for j := i + 1; j <= close; j++ {
				p.consumed[j] = true
			}
			continue
		}

		// expansion first, acronym parenthesized
		if p.kind(i+2) == chunk.NounPhrase && isAcronym(p.chunks[i+2].Concept) &&
			p.otherWord(i+3) == ")" {
			acr := p.chunks[i+2].Concept
			expansion := p.expansionEndingAt(i)

			p.acronyms[acr] = expansion
			p.emit(acr, "ref", expansion)
			for j := i + 1; j <= i+3; j++ {
				p.consumed[j] = true
			}
		}
	}
}

// expansionEndingAt joins the noun-phrase run ending at chunk i,
// looking back through coordinating conjunctions so an expansion like
// "Food and Drug Administration" survives its conjunction split. The
// leading determiner of the first phrase is stripped.
func (p *parser) expansionEndingAt(i int) string {
	start := i
	for j := i - 1; j >= 0 && i-j <= attachWindow; j-- {
		if p.kind(j) == chunk.NounPhrase || isConjWord(p.otherWord(j)) {
			start = j
			continue
		}
		break
	}
	for start < i && isConjWord(p.otherWord(start)) {
		start++
	}

	parts := make([]string, 0, i-start+1)
	for j := start; j <= i; j++ {
		text := p.chunks[j].Text
		if j == start && p.chunks[j].Kind == chunk.NounPhrase {
			text = p.chunks[j].Concept
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func isAcronym(s string) bool {
	if len(s) < 2 || strings.ContainsRune(s, ' ') {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// detectEnumerations handles "NP : NP, NP and NP" — the head noun
// phrase gains an appos edge per listed item. Consumed chunks are
// recorded but later passes are free to re-inspect them; the final
// structural dedup keeps the edge set clean.
func (p *parser) detectEnumerations() {
	for i := 0; i+2 < len(p.chunks); i++ {
		if p.kind(i) != chunk.NounPhrase || p.otherWord(i+1) != ":" ||
			p.kind(i+2) != chunk.NounPhrase {
			continue
		}
		head := phrase(p.chunks[i])
		p.emit(head, "appos", phrase(p.chunks[i+2]))
		p.consumed[i+1] = true
		p.consumed[i+2] = true

		j := i + 3
		for j < len(p.chunks) {
			switch {
			// ", NP"
			case p.otherWord(j) == "," && p.kind(j+1) == chunk.NounPhrase:
				p.emit(head, "appos", phrase(p.chunks[j+1]))
				p.consumed[j] = true
				p.consumed[j+1] = true
				j += 2
			// ", and NP"
			case p.otherWord(j) == "," && isConjWord(p.otherWord(j+1)) &&
				p.kind(j+2) == chunk.NounPhrase:
				p.emit(head, "appos", phrase(p.chunks[j+2]))
				p.consumed[j] = true
				p.consumed[j+1] = true
				p.consumed[j+2] = true
				j += 3
			// "and NP"
			case isConjWord(p.otherWord(j)) && p.kind(j+1) == chunk.NounPhrase:
				p.emit(head, "appos", phrase(p.chunks[j+1]))
				p.consumed[j] = true
				p.consumed[j+1] = true
				j += 2
			default:
				j = len(p.chunks)
			}
		}
		i = j - 1
	}
}

func isConjWord(w string) bool {
	return w == "and" || w == "or" || w == "nor"
}

// propagateCoordination copies relations across conjuncts: for every
// conj_X(a, b), every other edge headed by a is copied onto b, every
// edge depending on a is copied with b, and every edge depending on b
// is copied with a. Structural duplicates are skipped.
func propagateCoordination(edges []Edge) []Edge {
	out := edges
	seen := make(map[Edge]bool, len(edges)*2)
	for _, e := range edges {
		seen[e] = true
	}
	add := func(e Edge) {
		if e.Head == e.Dep || seen[e] {
			return
		}
		seen[e] = true
		out = append(out, e)
	}

	for _, c := range edges {
		if !strings.HasPrefix(c.Rel, "conj_") {
			continue
		}
		a, b := c.Head, c.Dep
		for _, e := range edges {
			if e == c {
				continue
			}
			if e.Head == a {
				add(Edge{Head: b, Rel: e.Rel, Dep: e.Dep})
			}
			if e.Dep == a {
				add(Edge{Head: e.Head, Rel: e.Rel, Dep: b})
			}
			if e.Dep == b {
				add(Edge{Head: e.Head, Rel: e.Rel, Dep: a})
			}
		}
	}
	return out
}

func dedupe(edges []Edge) []Edge {
	seen := make(map[Edge]bool, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
