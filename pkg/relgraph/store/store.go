// Package store defines the persistence surface of the concept index.
package store

import "context"

// Concept is a persisted canonical concept node. ID is a pure
// function of the lowercased label, so identical phrases anywhere in
// the corpus resolve to the same node.
type Concept struct {
	ID        string
	Label     string
	Backlinks []string // source-node identifiers mentioning this concept
}

// Child is a bookkeeping record owned by a source node. Shared
// records survive their owner's re-ingestion.
type Child struct {
	ID      string
	OwnerID string
	Kind    string
	Shared  bool
}

// Store is the persistence interface of the concept index. Update
// runs fn inside one transaction: either every mutation applies or
// none does. Partial application of a reconciliation is a correctness
// hazard, not a degraded mode.
type Store interface {
	Close() error

	Update(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the operation set available inside a transaction.
type Tx interface {
	Concepts() ([]Concept, error)
	GetConcept(id string) (Concept, bool, error)
	PutConcept(c Concept) error
	DeleteConcept(id string) error

	PutChild(c Child) error
	OwnedChildren(ownerID string) ([]Child, error)
	// DeleteOwnedChildren removes the owner's non-shared child
	// records. Shared records are exempt.
	DeleteOwnedChildren(ownerID string) error
}
