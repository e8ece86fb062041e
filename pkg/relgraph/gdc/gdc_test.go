package gdc

import (
	"context"
	"errors"
	"testing"

	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
	"github.com/cognitext/relgraph/pkg/relgraph/store"
	"github.com/cognitext/relgraph/pkg/relgraph/store/memstore"
)

func findConcept(concepts []store.Concept, label string) (store.Concept, bool) {
	for _, c := range concepts {
		if c.Label == label {
			return c, true
		}
	}
	return store.Concept{}, false
}

func TestConceptIDStable(t *testing.T) {
	a := ConceptID("drug")
	if len(a) != 64 {
		t.Fatalf("ConceptID length = %d, want 64 hex chars", len(a))
	}
	if ConceptID("drug") != a {
		t.Error("ConceptID not deterministic")
	}
	if ConceptID("Drug") != a {
		t.Error("ConceptID must be case-insensitive")
	}
	if ConceptID("team") == a {
		t.Error("distinct lemmas must get distinct IDs")
	}
}

func TestExtractDeduplicatesAcrossNodes(t *testing.T) {
	m := New(nil, nil)
	concepts := m.Extract([]SourceNode{
		{ID: "A", Props: map[string]string{"text": "The team wrote the report."}},
		{ID: "B", Props: map[string]string{"text": "The report was written by the agency."}},
	})

	report, ok := findConcept(concepts, "report")
	if !ok {
		t.Fatalf("concept 'report' missing in %+v", concepts)
	}
	if len(report.Backlinks) != 2 || report.Backlinks[0] != "A" || report.Backlinks[1] != "B" {
		t.Errorf("report backlinks = %v, want [A B]", report.Backlinks)
	}
	if report.ID != ConceptID("report") {
		t.Errorf("report ID = %q, want content address", report.ID)
	}

	// the verb surfaces under its head lemma from both voices
	write, ok := findConcept(concepts, "write")
	if !ok {
		t.Fatalf("concept 'write' missing in %+v", concepts)
	}
	if len(write.Backlinks) != 2 {
		t.Errorf("write backlinks = %v, want both nodes", write.Backlinks)
	}

	if _, ok := findConcept(concepts, "team"); !ok {
		t.Error("concept 'team' missing")
	}
	if _, ok := findConcept(concepts, "agency"); !ok {
		t.Error("concept 'agency' missing")
	}
}

func TestExtractBacklinkIdempotentWithinNode(t *testing.T) {
	m := New(nil, nil)
	concepts := m.Extract([]SourceNode{
		{ID: "A", Props: map[string]string{
			"title": "The report",
			"body":  "The report describes the report.",
		}},
	})

	report, ok := findConcept(concepts, "report")
	if !ok {
		t.Fatalf("concept 'report' missing in %+v", concepts)
	}
	if len(report.Backlinks) != 1 || report.Backlinks[0] != "A" {
		t.Errorf("backlinks = %v, want [A] exactly once", report.Backlinks)
	}
}

func TestExtractKeepsLabelCase(t *testing.T) {
	m := New(nil, nil)
	concepts := m.Extract([]SourceNode{
		{ID: "A", Props: map[string]string{"text": "The FDA approved the drug."}},
	})

	fda, ok := findConcept(concepts, "FDA")
	if !ok {
		t.Fatalf("concept 'FDA' missing in %+v", concepts)
	}
	if fda.ID != ConceptID("fda") {
		t.Errorf("ID = %q, want the case-normalized content address", fda.ID)
	}
	if _, ok := findConcept(concepts, "fda"); ok {
		t.Error("label must keep the lemma's casing, not fold it")
	}
}

func TestReconcileUpsertsAndDeletesOrphans(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	m := New(nil, st)

	nodeA := SourceNode{ID: "A", Props: map[string]string{"text": "The team wrote the report."}}
	nodeB := SourceNode{ID: "B", Props: map[string]string{"text": "The agency approved the plan."}}

	sum, err := m.Reconcile(ctx, []SourceNode{nodeA, nodeB})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if sum.Upserted == 0 || sum.Deleted != 0 {
		t.Errorf("first run summary = %+v", sum)
	}
	if sum.RunID == "" {
		t.Error("RunID empty")
	}

	// second run drops node B: its concepts disappear, node A's stay
	sum, err = m.Reconcile(ctx, []SourceNode{nodeA})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if sum.Deleted == 0 {
		t.Error("orphaned concepts should be deleted")
	}

	err = st.View(ctx, func(tx store.Tx) error {
		if _, ok, err := tx.GetConcept(ConceptID("agency")); err != nil || ok {
			t.Errorf("agency should be gone (ok=%v, err=%v)", ok, err)
		}
		c, ok, err := tx.GetConcept(ConceptID("team"))
		if err != nil || !ok {
			t.Fatalf("team missing (err=%v)", err)
		}
		if len(c.Backlinks) != 1 || c.Backlinks[0] != "A" {
			t.Errorf("team backlinks = %v, want [A]", c.Backlinks)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestReconcileRemovesOwnedChildren(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	err := st.Update(ctx, func(tx store.Tx) error {
		if err := tx.PutChild(store.Child{ID: "c1", OwnerID: "A", Kind: "annotation"}); err != nil {
			return err
		}
		return tx.PutChild(store.Child{ID: "c2", OwnerID: "A", Kind: "annotation", Shared: true})
	})
	if err != nil {
		t.Fatal(err)
	}

	m := New(nil, st)
	node := SourceNode{ID: "A", Props: map[string]string{"text": "The team wrote the report."}}
	if _, err := m.Reconcile(ctx, []SourceNode{node}, "A"); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	err = st.View(ctx, func(tx store.Tx) error {
		children, err := tx.OwnedChildren("A")
		if err != nil {
			return err
		}
		if len(children) != 1 || children[0].ID != "c2" {
			t.Errorf("children = %+v, want only the shared record", children)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

// failStore refuses every transaction.
type failStore struct{ err error }

func (f *failStore) Close() error { return nil }
func (f *failStore) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.err
}
func (f *failStore) View(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.err
}

func TestReconcileSurfacesPersistenceError(t *testing.T) {
	m := New(nil, &failStore{err: errors.New("disk full")})
	node := SourceNode{ID: "A", Props: map[string]string{"text": "The team wrote the report."}}

	_, err := m.Reconcile(context.Background(), []SourceNode{node})
	if !errors.Is(err, internalerr.ErrPersistence) {
		t.Errorf("got %v, want ErrPersistence", err)
	}
}
