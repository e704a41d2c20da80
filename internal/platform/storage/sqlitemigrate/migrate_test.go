package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsAndSkipsApplied(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_runs.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE runs(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE runs;")},
		"002_cmds.sql": &fstest.MapFile{Data: []byte("CREATE TABLE cmds(id INTEGER PRIMARY KEY);")},
		"README.md":    &fstest.MapFile{Data: []byte("not a migration")},
	}

	applied, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if len(applied) != 2 || applied[0] != "001_runs.sql" || applied[1] != "002_cmds.sql" {
		t.Fatalf("applied = %v", applied)
	}
	if !tableExists(t, db, "runs") || !tableExists(t, db, "cmds") {
		t.Fatal("expected migrated tables")
	}

	again, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("reapply migrations: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no migrations on rerun, got %v", again)
	}
	if rows := countRows(t, db); rows != 2 {
		t.Fatalf("schema_migrations rows = %d, want 2", rows)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openMemoryDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT table things(id INT);")},
	}
	if _, err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if rows := countRows(t, db); rows != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", rows)
	}
}

func TestApplyUsesRootInKey(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"journal/001_journal.sql": &fstest.MapFile{Data: []byte("CREATE TABLE journal(id TEXT);")},
	}
	applied, err := Apply(context.Background(), db, migrations, "journal/")
	if err != nil {
		t.Fatalf("apply with root: %v", err)
	}
	if len(applied) != 1 || applied[0] != "journal/001_journal.sql" {
		t.Fatalf("applied = %v", applied)
	}
}

func TestApplyRequiresInputs(t *testing.T) {
	if _, err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	db := openMemoryDB(t)
	if _, err := Apply(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(x);", want: "CREATE TABLE a(x);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(x);", want: "\nCREATE TABLE a(x);"},
		{name: "up and down", content: "-- +migrate Up\nA;\n-- +migrate Down\nB;", want: "\nA;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpSection(tt.content); got != tt.want {
				t.Fatalf("UpSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error should not match")
	}
	if !IsAlreadyExistsError(errors.New("table runs already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: seq")) {
		t.Fatal("expected duplicate column match")
	}
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&value); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("check table exists: %v", err)
	}
	return found == name
}
