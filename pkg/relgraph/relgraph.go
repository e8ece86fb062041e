// Package relgraph turns raw text into tagged words, phrase chunks,
// typed dependency edges and, optionally, knowledge-base entities.
package relgraph

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cognitext/relgraph/pkg/relgraph/chunk"
	"github.com/cognitext/relgraph/pkg/relgraph/dep"
	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
	"github.com/cognitext/relgraph/pkg/relgraph/link"
	"github.com/cognitext/relgraph/pkg/relgraph/tag"
)

// concurrent entity lookups per analysis
const linkParallelism = 4

// Analyzer is the main facade. It is safe for concurrent use; all
// per-text state lives in the Session.
type Analyzer struct {
	lex    *lexicon.Lexicon
	linker *link.Linker
}

// Options configures an Analyzer instance.
type Options struct {
	// Lexicon provides tag candidates; nil falls back to the built-in
	// default.
	Lexicon *lexicon.Lexicon
	// Linker resolves phrases against a knowledge base; nil disables
	// entity linking.
	Linker *link.Linker
}

// New creates an Analyzer with the given dependencies.
func New(opts Options) *Analyzer {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Analyzer{lex: lex, linker: opts.Linker}
}

// Analysis is the full output for one text.
type Analysis struct {
	Words    []tag.TaggedWord
	Chunks   []chunk.Chunk
	Edges    []dep.Edge
	Acronyms map[string]string
	Entities []link.LinkedEntity
}

// Session analyzes a stream of related texts. Quote-pairing state
// carries across calls within one session and never leaks between
// sessions. Not safe for concurrent use.
type Session struct {
	analyzer *Analyzer
	tagger   *tag.Tagger
}

// NewSession creates a Session with fresh quote state.
func (a *Analyzer) NewSession() *Session {
	return &Session{analyzer: a, tagger: tag.NewTagger(a.lex)}
}

// Analyze runs a single text through a fresh session.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Analysis, error) {
	return a.NewSession().Analyze(ctx, text)
}

// Analyze tags, chunks and parses text, then links the distinct
// phrases appearing in the edge set. Linking is best-effort: a phrase
// that cannot be resolved is simply absent from Entities.
func (s *Session) Analyze(ctx context.Context, text string) (Analysis, error) {
	words := s.tagger.Tag(text)
	chunks := chunk.Split(words)
	parsed := dep.Parse(chunks)

	out := Analysis{
		Words:    words,
		Chunks:   chunks,
		Edges:    parsed.Edges,
		Acronyms: parsed.Acronyms,
	}
	if s.analyzer.linker == nil || len(parsed.Edges) == 0 {
		return out, nil
	}

	phrases := collectPhrases(chunks, parsed.Edges)
	if len(phrases) == 0 {
		return out, nil
	}

	results := make([]*link.LinkedEntity, len(phrases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(linkParallelism)
	for i := range phrases {
		i := i
		g.Go(func() error {
			ent, err := s.analyzer.linker.Link(gctx, phrases[i])
			if err != nil {
				return nil // degrade to "no match" for this phrase
			}
			results[i] = ent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	for _, ent := range results {
		if ent != nil {
			out.Entities = append(out.Entities, *ent)
		}
	}
	return out, ctx.Err()
}

// collectPhrases gathers the distinct noun- and verb-phrase names that
// appear as edge endpoints, each carrying the shared context-term set
// of the analysis.
func collectPhrases(chunks []chunk.Chunk, edges []dep.Edge) []link.Phrase {
	kinds := make(map[string]chunk.Kind)
	context := make(map[string]struct{})
	for _, c := range chunks {
		if c.Kind == chunk.Other {
			continue
		}
		kinds[conceptName(c)] = c.Kind
		context[strings.ToLower(c.HeadLemma())] = struct{}{}
	}

	var out []link.Phrase
	seen := make(map[string]struct{})
	for _, e := range edges {
		for _, name := range [2]string{e.Head, e.Dep} {
			kind, ok := kinds[name]
			if !ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, link.Phrase{Text: name, Kind: kind, Context: context})
		}
	}
	return out
}

// conceptName mirrors the edge-endpoint naming of the parser: head
// verb lemma for verb phrases, lemmatized concept for noun phrases.
func conceptName(c chunk.Chunk) string {
	if c.Kind == chunk.VerbPhrase {
		return c.HeadLemma()
	}
	return c.Lemma
}
