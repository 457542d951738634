package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName != DriverName() {
		t.Errorf("DriverName mismatch: info=%s, func=%s", info.DriverName, DriverName())
	}
	if info.DriverType != DriverType() {
		t.Errorf("DriverType mismatch: info=%s, func=%s", info.DriverType, DriverType())
	}
	if info.IsCGO != IsCGO() {
		t.Errorf("IsCGO mismatch: info=%v, func=%v", info.IsCGO, IsCGO())
	}
	if info.Package == "" {
		t.Error("Package should not be empty")
	}

	t.Logf("SQLite driver: %s (%s) from %s", info.DriverName, info.DriverType, info.Package)
}

func TestDriverTypeConsistency(t *testing.T) {
	switch DriverType() {
	case "purego":
		if IsCGO() {
			t.Error("IsCGO() should be false for purego driver")
		}
		if DriverName() != "sqlite" {
			t.Errorf("purego driver should use 'sqlite' name, got '%s'", DriverName())
		}
	case "cgo":
		if !IsCGO() {
			t.Error("IsCGO() should be true for cgo driver")
		}
		if DriverName() != "sqlite3" {
			t.Errorf("cgo driver should use 'sqlite3' name, got '%s'", DriverName())
		}
	default:
		t.Errorf("unknown driver type: %s", DriverType())
	}
}

func TestDSN(t *testing.T) {
	rw := dsn("/tmp/verses.db", "rwc")
	if !strings.HasPrefix(rw, "file:/tmp/verses.db?mode=rwc&") {
		t.Errorf("dsn(rwc) = %q", rw)
	}
	if !strings.Contains(strings.ToLower(rw), "wal") {
		t.Errorf("dsn(rwc) = %q, want WAL journaling", rw)
	}

	ro := dsn("/tmp/verses.db", "ro")
	if !strings.Contains(ro, "mode=ro") || strings.Contains(strings.ToLower(ro), "wal") {
		t.Errorf("dsn(ro) = %q", ro)
	}
}

func TestOpenRejectsQuery(t *testing.T) {
	if _, err := Open("verses.db?mode=memory"); err == nil {
		t.Error("Open() with a query string should fail")
	}
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE verses (id INTEGER PRIMARY KEY, text TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO verses (text) VALUES (?)`, "In the beginning"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var text string
	if err := db.QueryRow(`SELECT text FROM verses WHERE id = 1`).Scan(&text); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if text != "In the beginning" {
		t.Errorf("text = %q, want %q", text, "In the beginning")
	}

	var fk int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("PRAGMA foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestOpenReadOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE verses (id INTEGER PRIMARY KEY, text TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO verses (text) VALUES (?)`, "readonly"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	db.Close()

	rodb, err := OpenReadOnly(dbPath)
	if err != nil {
		t.Fatalf("failed to open read-only: %v", err)
	}
	defer rodb.Close()

	var text string
	if err := rodb.QueryRow(`SELECT text FROM verses WHERE id = 1`).Scan(&text); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if text != "readonly" {
		t.Errorf("expected 'readonly', got '%s'", text)
	}

	if _, err := rodb.Exec(`INSERT INTO verses (text) VALUES (?)`, "write"); err == nil {
		t.Error("write through read-only handle succeeded")
	}
}

func TestMustOpen(t *testing.T) {
	db := MustOpen(filepath.Join(t.TempDir(), "test.db"))
	db.Close()
}
