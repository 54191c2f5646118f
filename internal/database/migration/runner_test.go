package migration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"team-match/internal/database"
)

type fakeTx struct {
	execs      []string
	committed  bool
	rolledBack bool
	failOn     string
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.execs = append(t.execs, query)
	if t.failOn != "" && strings.Contains(query, t.failOn) {
		return 0, errors.New("exec failed")
	}
	return 0, nil
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	execs    []string
	txs      []*fakeTx
	txFailOn string
	applied  [][2]any // version, checksum pairs returned by the ledger query
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }

func (d *fakeDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	d.execs = append(d.execs, query)
	return 0, nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{rows: d.applied}, nil
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	tx := &fakeTx{failOn: d.txFailOn}
	d.txs = append(d.txs, tx)
	return tx, nil
}

type fakeRows struct {
	rows [][2]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	*(dest[0].(*int64)) = row[0].(int64)
	*(dest[1].(*string)) = row[1].(string)
	return nil
}

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
}

func TestRunner_AppliesAndRecordsInOneTransaction(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id INT)")

	db := &fakeDB{}
	if err := (Runner{Dir: dir}).Run(context.Background(), db); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(db.txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(db.txs))
	}
	tx := db.txs[0]
	if len(tx.execs) != 2 {
		t.Fatalf("expected migration SQL and ledger insert in the transaction, got %d execs", len(tx.execs))
	}
	if !strings.Contains(tx.execs[0], "CREATE TABLE t") {
		t.Fatalf("first tx exec is not the migration SQL: %q", tx.execs[0])
	}
	if !strings.Contains(tx.execs[1], "INSERT INTO schema_migrations") {
		t.Fatalf("second tx exec is not the ledger insert: %q", tx.execs[1])
	}
	if !tx.committed {
		t.Fatalf("expected the transaction to commit")
	}
	if tx.rolledBack {
		t.Fatalf("committed transaction must not roll back")
	}
}

func TestRunner_LedgerInsertFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id INT)")

	db := &fakeDB{txFailOn: "schema_migrations"}
	err := (Runner{Dir: dir}).Run(context.Background(), db)
	if err == nil {
		t.Fatalf("expected an error when the ledger insert fails")
	}

	if len(db.txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(db.txs))
	}
	tx := db.txs[0]
	if tx.committed {
		t.Fatalf("failed apply must not commit")
	}
	if !tx.rolledBack {
		t.Fatalf("failed apply must roll back")
	}
}

func TestRunner_SkipsAppliedAndChecksMismatch(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (id INT)")

	migs, err := loadMigrations(dir)
	if err != nil || len(migs) != 1 {
		t.Fatalf("load migrations: %v (%d)", err, len(migs))
	}

	db := &fakeDB{applied: [][2]any{{int64(1), migs[0].Checksum}}}
	if err := (Runner{Dir: dir}).Run(context.Background(), db); err != nil {
		t.Fatalf("run with applied migration: %v", err)
	}
	if len(db.txs) != 0 {
		t.Fatalf("already-applied migration must not start a transaction")
	}

	db = &fakeDB{applied: [][2]any{{int64(1), "stale"}}}
	err = (Runner{Dir: dir}).Run(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch error, got %v", err)
	}
}
