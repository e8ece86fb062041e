// Package gdc is the concept deduplication manager: it maintains one
// canonical, content-addressed concept node per distinct lemmatized
// phrase observed across the corpus, independent of any single
// sentence's graph.
package gdc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognitext/relgraph/pkg/relgraph/chunk"
	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
	"github.com/cognitext/relgraph/pkg/relgraph/store"
	"github.com/cognitext/relgraph/pkg/relgraph/tag"
)

// SourceNode is the generic node representation the manager consumes:
// an identifier, a type list, and zero or more text-bearing
// properties.
type SourceNode struct {
	ID    string
	Types []string
	Props map[string]string
}

// Summary describes one reconciliation run.
type Summary struct {
	RunID    string
	Upserted int
	Deleted  int
}

// Manager deduplicates concepts across source nodes and reconciles
// them against the persisted store.
type Manager struct {
	lex   *lexicon.Lexicon
	store store.Store
}

// New creates a Manager. A nil lexicon falls back to the built-in
// default.
func New(lex *lexicon.Lexicon, st store.Store) *Manager {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Manager{lex: lex, store: st}
}

// ConceptID is the content address of a concept: the hex SHA-256 of
// the lowercased lemma. A pure function of the normalized label, so
// identical phrases anywhere in the corpus resolve to one node.
func ConceptID(lemma string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(lemma)))
	return hex.EncodeToString(sum[:])
}

// Extract computes the deduplicated concept set for a batch of source
// nodes. Backlink sets carry each mentioning source node exactly once.
func (m *Manager) Extract(nodes []SourceNode) []store.Concept {
	byKey := make(map[string]*store.Concept)
	linked := make(map[string]map[string]struct{})

	for _, node := range nodes {
		// one tagger per node: quote state is scoped to the node's
		// property stream, never shared across nodes
		tagger := tag.NewTagger(m.lex)

		props := make([]string, 0, len(node.Props))
		for name := range node.Props {
			props = append(props, name)
		}
		sort.Strings(props)

		for _, name := range props {
			words := tagger.Tag(node.Props[name])
			for _, c := range chunk.Split(words) {
				if c.Kind == chunk.Other || c.Concept == "" {
					continue
				}
				// same naming as the parser: head-verb lemma for verb
				// phrases, lemmatized concept for noun phrases
				name := c.Lemma
				if c.Kind == chunk.VerbPhrase {
					name = c.HeadLemma()
				}
				key := strings.ToLower(name)
				concept, ok := byKey[key]
				if !ok {
					// only the identifier is case-normalized; the label
					// keeps the lemma's casing ("FDA", not "fda")
					concept = &store.Concept{ID: ConceptID(key), Label: name}
					byKey[key] = concept
					linked[key] = make(map[string]struct{})
				}
				if _, dup := linked[key][node.ID]; dup {
					continue
				}
				linked[key][node.ID] = struct{}{}
				concept.Backlinks = append(concept.Backlinks, node.ID)
			}
		}
	}

	out := make([]store.Concept, 0, len(byKey))
	for _, c := range byKey {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reconcile extracts the concept set for the given source nodes and
// reconciles the store against it in ONE transaction: persisted
// concepts absent from this run are deleted, all current concepts are
// upserted, and the previously-owned non-shared child records of any
// re-processed source node are removed. Partial application never
// happens; a failed transaction surfaces as a persistence error.
func (m *Manager) Reconcile(ctx context.Context, nodes []SourceNode, updatedIDs ...string) (Summary, error) {
	current := m.Extract(nodes)
	summary := Summary{RunID: ulid.Make().String()}

	err := m.store.Update(ctx, func(tx store.Tx) error {
		existing, err := tx.Concepts()
		if err != nil {
			return err
		}

		keep := make(map[string]struct{}, len(current))
		for _, c := range current {
			keep[c.ID] = struct{}{}
		}
		for _, old := range existing {
			if _, ok := keep[old.ID]; ok {
				continue
			}
			if err := tx.DeleteConcept(old.ID); err != nil {
				return err
			}
			summary.Deleted++
		}

		for _, c := range current {
			if err := tx.PutConcept(c); err != nil {
				return err
			}
			summary.Upserted++
		}

		for _, id := range updatedIDs {
			if err := tx.DeleteOwnedChildren(id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, internalerr.ErrPersistence) {
			err = fmt.Errorf("%w: reconcile: %v", internalerr.ErrPersistence, err)
		}
		return Summary{}, err
	}
	return summary, nil
}
