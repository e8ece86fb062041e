// Package memstore is an in-memory implementation of store.Store for
// tests. Transactions copy the state and swap it back on success, so
// a failed Update leaves the store untouched.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognitext/relgraph/pkg/relgraph/store"
)

// Store is an in-memory store.Store.
type Store struct {
	mu       sync.Mutex
	concepts map[string]store.Concept
	children map[string]store.Child
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		concepts: make(map[string]store.Concept),
		children: make(map[string]store.Child),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Update runs fn over a snapshot and commits it atomically on success.
func (s *Store) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		concepts: copyConcepts(s.concepts),
		children: copyChildren(s.children),
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.concepts = tx.concepts
	s.children = tx.children
	return nil
}

// View runs fn over a snapshot; mutations are discarded.
func (s *Store) View(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	tx := &memTx{
		concepts: copyConcepts(s.concepts),
		children: copyChildren(s.children),
	}
	s.mu.Unlock()
	return fn(tx)
}

type memTx struct {
	concepts map[string]store.Concept
	children map[string]store.Child
}

func (t *memTx) Concepts() ([]store.Concept, error) {
	out := make([]store.Concept, 0, len(t.concepts))
	for _, c := range t.concepts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) GetConcept(id string) (store.Concept, bool, error) {
	c, ok := t.concepts[id]
	return c, ok, nil
}

func (t *memTx) PutConcept(c store.Concept) error {
	t.concepts[c.ID] = store.Concept{
		ID:        c.ID,
		Label:     c.Label,
		Backlinks: append([]string(nil), c.Backlinks...),
	}
	return nil
}

func (t *memTx) DeleteConcept(id string) error {
	delete(t.concepts, id)
	return nil
}

func (t *memTx) PutChild(c store.Child) error {
	t.children[c.ID] = c
	return nil
}

func (t *memTx) OwnedChildren(ownerID string) ([]store.Child, error) {
	var out []store.Child
	for _, c := range t.children {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) DeleteOwnedChildren(ownerID string) error {
	for id, c := range t.children {
		if c.OwnerID == ownerID && !c.Shared {
			delete(t.children, id)
		}
	}
	return nil
}

func copyConcepts(in map[string]store.Concept) map[string]store.Concept {
	out := make(map[string]store.Concept, len(in))
	for id, c := range in {
		out[id] = store.Concept{
			ID:        c.ID,
			Label:     c.Label,
			Backlinks: append([]string(nil), c.Backlinks...),
		}
	}
	return out
}

func copyChildren(in map[string]store.Child) map[string]store.Child {
	out := make(map[string]store.Child, len(in))
	for id, c := range in {
		out[id] = c
	}
	return out
}
