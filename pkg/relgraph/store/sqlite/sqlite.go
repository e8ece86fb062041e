// Package sqlite implements store.Store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
	"github.com/cognitext/relgraph/pkg/relgraph/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and the schema
// initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS concepts (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS concept_backlinks (
	concept_id TEXT NOT NULL,
	source_id TEXT NOT NULL,
	UNIQUE(concept_id, source_id),
	FOREIGN KEY(concept_id) REFERENCES concepts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS child_records (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	shared INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_backlinks_concept ON concept_backlinks(concept_id);
CREATE INDEX IF NOT EXISTS idx_children_owner ON child_records(owner_id);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Update runs fn in one read-write transaction.
func (s *sqliteStore) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.run(ctx, fn, false)
}

// View runs fn in a read-only transaction.
func (s *sqliteStore) View(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.run(ctx, fn, true)
}

func (s *sqliteStore) run(ctx context.Context, fn func(tx store.Tx) error, readOnly bool) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", internalerr.ErrPersistence, err)
	}
	wrapped := &sqliteTx{tx: tx}
	if err := fn(wrapped); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", internalerr.ErrPersistence, err)
	}
	return nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Concepts() ([]store.Concept, error) {
	rows, err := t.tx.Query(`SELECT id, label FROM concepts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Concept
	for rows.Next() {
		var c store.Concept
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		links, err := t.backlinks(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Backlinks = links
	}
	return out, nil
}

func (t *sqliteTx) GetConcept(id string) (store.Concept, bool, error) {
	var c store.Concept
	err := t.tx.QueryRow(`SELECT id, label FROM concepts WHERE id = ?`, id).
		Scan(&c.ID, &c.Label)
	if err == sql.ErrNoRows {
		return store.Concept{}, false, nil
	}
	if err != nil {
		return store.Concept{}, false, err
	}
	links, err := t.backlinks(id)
	if err != nil {
		return store.Concept{}, false, err
	}
	c.Backlinks = links
	return c, true, nil
}

func (t *sqliteTx) backlinks(conceptID string) ([]string, error) {
	rows, err := t.tx.Query(
		`SELECT source_id FROM concept_backlinks WHERE concept_id = ? ORDER BY source_id`,
		conceptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (t *sqliteTx) PutConcept(c store.Concept) error {
	if _, err := t.tx.Exec(
		`INSERT INTO concepts (id, label) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET label = excluded.label`,
		c.ID, c.Label); err != nil {
		return err
	}
	if _, err := t.tx.Exec(
		`DELETE FROM concept_backlinks WHERE concept_id = ?`, c.ID); err != nil {
		return err
	}
	for _, src := range c.Backlinks {
		if _, err := t.tx.Exec(
			`INSERT OR IGNORE INTO concept_backlinks (concept_id, source_id) VALUES (?, ?)`,
			c.ID, src); err != nil {
			return err
		}
	}
	return nil
}

func (t *sqliteTx) DeleteConcept(id string) error {
	if _, err := t.tx.Exec(`DELETE FROM concept_backlinks WHERE concept_id = ?`, id); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM concepts WHERE id = ?`, id)
	return err
}

func (t *sqliteTx) PutChild(c store.Child) error {
	_, err := t.tx.Exec(
		`INSERT INTO child_records (id, owner_id, kind, shared) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET owner_id = excluded.owner_id,
			kind = excluded.kind, shared = excluded.shared`,
		c.ID, c.OwnerID, c.Kind, boolInt(c.Shared))
	return err
}

func (t *sqliteTx) OwnedChildren(ownerID string) ([]store.Child, error) {
	rows, err := t.tx.Query(
		`SELECT id, owner_id, kind, shared FROM child_records WHERE owner_id = ? ORDER BY id`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Child
	for rows.Next() {
		var c store.Child
		var shared int
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Kind, &shared); err != nil {
			return nil, err
		}
		c.Shared = shared != 0
		out = append(out, c)
	}
	return out, rows.Err()
}

func (t *sqliteTx) DeleteOwnedChildren(ownerID string) error {
	_, err := t.tx.Exec(
		`DELETE FROM child_records WHERE owner_id = ? AND shared = 0`, ownerID)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
