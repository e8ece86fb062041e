// Package link resolves phrases against an external knowledge base.
// Linking is best-effort: any external fault degrades to "no match"
// for the affected phrase, never to a hard failure.
package link

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cognitext/relgraph/pkg/relgraph/chunk"
	"github.com/cognitext/relgraph/pkg/relgraph/config"
	"github.com/cognitext/relgraph/pkg/relgraph/lemma"
	"github.com/cognitext/relgraph/pkg/relgraph/link/wikidata"
)

// Searcher is the external lookup surface the linker needs. Satisfied
// by *wikidata.Client; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, term string, limit int) ([]wikidata.Candidate, error)
	Fetch(ctx context.Context, ids []string) (map[string]wikidata.Entity, error)
	TypeLabels(ctx context.Context, ids []string) ([]string, error)
}

// Phrase is a linking request: the phrase text, the chunk type it came
// from, and the context-term set shared across the analysis.
type Phrase struct {
	Text    string
	Kind    chunk.Kind
	Context map[string]struct{}
}

// LinkedEntity is a successful link. At most one per phrase per
// analysis.
type LinkedEntity struct {
	Phrase      string
	IRI         string
	Label       string
	Description string
	Confidence  float64
}

// Linker scores knowledge-base candidates for phrases. The cache is
// shared and bounded; concurrent lookups for the same key are allowed
// to race (no single-flight) but never corrupt it.
type Linker struct {
	client Searcher
	cfg    config.Linker
	cache  *expirable.LRU[string, []wikidata.Candidate]
}

// New creates a Linker with a bounded, size- and time-evicting cache.
func New(client Searcher, cfg config.Linker) *Linker {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &Linker{
		client: client,
		cfg:    cfg,
		cache:  expirable.NewLRU[string, []wikidata.Candidate](cfg.CacheSize, nil, ttl),
	}
}

// Link resolves a phrase to at most one entity. A nil entity with nil
// error means no acceptable match.
func (l *Linker) Link(ctx context.Context, p Phrase) (*LinkedEntity, error) {
	terms := cascade(p.Text)
	candidates := l.gather(ctx, terms)
	if len(candidates) == 0 {
		return nil, nil
	}

	keywords := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		keywords[strings.ToLower(t)] = struct{}{}
	}

	best, bestScore := l.rank(ctx, p, candidates, keywords)
	if best == nil || bestScore < l.cfg.Floor {
		return nil, nil
	}
	return &LinkedEntity{
		Phrase:      p.Text,
		IRI:         best.IRI,
		Label:       best.Label,
		Description: best.Description,
		Confidence:  bestScore,
	}, nil
}

// cascade builds the search terms: the phrase itself; for multi-word
// phrases its last word and that word's lemma; for single words the
// lemma.
func cascade(text string) []string {
	terms := []string{text}
	if idx := strings.LastIndexByte(text, ' '); idx >= 0 {
		last := text[idx+1:]
		terms = append(terms, last, lemma.Word(last))
	} else {
		terms = append(terms, lemma.Word(text))
	}

	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		key := strings.ToLower(t)
		if t == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// gather searches every cascade term, cache first, deduplicates by
// entity ID and caps the candidate list. A failed term is skipped.
func (l *Linker) gather(ctx context.Context, terms []string) []wikidata.Candidate {
	var out []wikidata.Candidate
	seen := make(map[string]struct{})

	for _, term := range terms {
		key := strings.ToLower(term)
		results, ok := l.cache.Get(key)
		if !ok {
			var err error
			results, err = l.client.Search(ctx, term, l.cfg.MaxCandidates)
			if err != nil {
				continue
			}
			l.cache.Add(key, results)
		}
		for _, c := range results {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
			if len(out) >= l.cfg.MaxCandidates {
				return out
			}
		}
	}
	return out
}

// rank scores all candidates concurrently and returns the best one.
// A failure scoring one candidate excludes that candidate only.
func (l *Linker) rank(ctx context.Context, p Phrase, candidates []wikidata.Candidate, keywords map[string]struct{}) (*wikidata.Candidate, float64) {
	type scored struct {
		idx   int
		score float64
		err   error
	}

	results := make([]scored, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := l.score(ctx, p, candidates[i], keywords)
			results[i] = scored{idx: i, score: s, err: err}
		}(i)
	}
	wg.Wait()

	best := -1
	bestScore := 0.0
	for _, r := range results {
		if r.err != nil {
			continue
		}
		if best < 0 || r.score > bestScore {
			best = r.idx
			bestScore = r.score
		}
	}
	if best < 0 {
		return nil, 0
	}
	return &candidates[best], bestScore
}

func (l *Linker) score(ctx context.Context, p Phrase, c wikidata.Candidate, keywords map[string]struct{}) (float64, error) {
	score := 0.0

	label := strings.ToLower(c.Label)
	desc := strings.ToLower(c.Description)
	for kw := range keywords {
		if containsWord(label, kw) {
			score += l.cfg.LabelWeight
		}
		if containsWord(desc, kw) {
			score += l.cfg.DescriptionWeight
		}
	}
	if c.Description != "" {
		score += l.cfg.HasDescriptionBonus
	}

	typeWords, err := l.typeWords(ctx, c.ID)
	if err != nil {
		return 0, err
	}

	// resonance: type-label words appearing among the other concepts
	// of the same analysis
	for w := range typeWords {
		if _, ok := p.Context[w]; ok {
			score += l.cfg.ResonanceWeight
		}
	}

	// semantic class filter
	expected, opposite := l.classSets(p.Kind)
	switch {
	case overlaps(typeWords, opposite):
		score += l.cfg.ClassMismatchWeight
	case overlaps(typeWords, expected):
		score += l.cfg.ClassMatchWeight
	}

	return score, nil
}

// typeWords fetches the candidate's instance-of type labels and
// splits them into a lowercase word set.
func (l *Linker) typeWords(ctx context.Context, id string) (map[string]struct{}, error) {
	entities, err := l.client.Fetch(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	ent, ok := entities[id]
	if !ok || len(ent.TypeIDs) == 0 {
		return map[string]struct{}{}, nil
	}
	labels, err := l.client.TypeLabels(ctx, ent.TypeIDs)
	if err != nil {
		return nil, err
	}

	words := make(map[string]struct{})
	for _, lbl := range labels {
		for _, w := range strings.Fields(strings.ToLower(lbl)) {
			words[w] = struct{}{}
		}
	}
	return words, nil
}

func (l *Linker) classSets(kind chunk.Kind) (expected, opposite map[string]struct{}) {
	action := toSet(l.cfg.ActionClasses)
	object := toSet(l.cfg.ObjectClasses)
	if kind == chunk.VerbPhrase {
		return action, object
	}
	return object, action
}

func toSet(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

func overlaps(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}

// containsWord reports whether text contains kw as a whole word.
func containsWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	idx := 0
	for {
		j := strings.Index(text[idx:], kw)
		if j < 0 {
			return false
		}
		j += idx
		before := j == 0 || !isWordByte(text[j-1])
		afterIdx := j + len(kw)
		after := afterIdx >= len(text) || !isWordByte(text[afterIdx])
		if before && after {
			return true
		}
		idx = j + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
