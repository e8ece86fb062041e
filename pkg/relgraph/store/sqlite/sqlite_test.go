package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognitext/relgraph/pkg/relgraph/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConceptRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	want := store.Concept{ID: "c1", Label: "drug", Backlinks: []string{"A", "B"}}
	err := s.Update(ctx, func(tx store.Tx) error {
		return tx.PutConcept(want)
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	err = s.View(ctx, func(tx store.Tx) error {
		got, ok, err := tx.GetConcept("c1")
		if err != nil || !ok {
			t.Fatalf("GetConcept: ok=%v err=%v", ok, err)
		}
		if got.Label != want.Label || len(got.Backlinks) != 2 {
			t.Errorf("got %+v, want %+v", got, want)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPutConceptReplacesBacklinks(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.Update(ctx, func(tx store.Tx) error {
		return tx.PutConcept(store.Concept{ID: "c1", Label: "drug", Backlinks: []string{"A", "B"}})
	})
	s.Update(ctx, func(tx store.Tx) error {
		return tx.PutConcept(store.Concept{ID: "c1", Label: "drug", Backlinks: []string{"B"}})
	})

	s.View(ctx, func(tx store.Tx) error {
		got, _, _ := tx.GetConcept("c1")
		if len(got.Backlinks) != 1 || got.Backlinks[0] != "B" {
			t.Errorf("backlinks = %v, want [B]", got.Backlinks)
		}
		return nil
	})
}

func TestDeleteConcept(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.Update(ctx, func(tx store.Tx) error {
		return tx.PutConcept(store.Concept{ID: "c1", Label: "drug", Backlinks: []string{"A"}})
	})
	s.Update(ctx, func(tx store.Tx) error {
		return tx.DeleteConcept("c1")
	})
	s.View(ctx, func(tx store.Tx) error {
		if _, ok, _ := tx.GetConcept("c1"); ok {
			t.Error("concept should be deleted")
		}
		return nil
	})
}

func TestConceptsOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.Update(ctx, func(tx store.Tx) error {
		tx.PutConcept(store.Concept{ID: "b", Label: "second"})
		tx.PutConcept(store.Concept{ID: "a", Label: "first"})
		return nil
	})
	s.View(ctx, func(tx store.Tx) error {
		all, err := tx.Concepts()
		if err != nil {
			return err
		}
		if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
			t.Errorf("Concepts = %+v, want ordered by ID", all)
		}
		return nil
	})
}

func TestRollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx store.Tx) error {
		if err := tx.PutConcept(store.Concept{ID: "c1", Label: "drug"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}

	s.View(ctx, func(tx store.Tx) error {
		if _, ok, _ := tx.GetConcept("c1"); ok {
			t.Error("rolled-back concept is visible")
		}
		return nil
	})
}

func TestChildRecords(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.Update(ctx, func(tx store.Tx) error {
		tx.PutChild(store.Child{ID: "c1", OwnerID: "A", Kind: "annotation"})
		tx.PutChild(store.Child{ID: "c2", OwnerID: "A", Kind: "annotation", Shared: true})
		tx.PutChild(store.Child{ID: "c3", OwnerID: "B", Kind: "annotation"})
		return nil
	})
	s.Update(ctx, func(tx store.Tx) error {
		return tx.DeleteOwnedChildren("A")
	})

	s.View(ctx, func(tx store.Tx) error {
		a, err := tx.OwnedChildren("A")
		if err != nil {
			return err
		}
		if len(a) != 1 || a[0].ID != "c2" || !a[0].Shared {
			t.Errorf("A children = %+v, want only shared c2", a)
		}
		b, err := tx.OwnedChildren("B")
		if err != nil {
			return err
		}
		if len(b) != 1 {
			t.Errorf("B children = %+v, must be untouched", b)
		}
		return nil
	})
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	s.Update(ctx, func(tx store.Tx) error {
		return tx.PutConcept(store.Concept{ID: "c1", Label: "drug", Backlinks: []string{"A"}})
	})
	s.Close()

	s2, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	s2.View(ctx, func(tx store.Tx) error {
		got, ok, err := tx.GetConcept("c1")
		if err != nil || !ok {
			t.Fatalf("after reopen: ok=%v err=%v", ok, err)
		}
		if got.Label != "drug" || len(got.Backlinks) != 1 {
			t.Errorf("after reopen: %+v", got)
		}
		return nil
	})
}
