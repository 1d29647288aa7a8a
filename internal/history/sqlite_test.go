package history

import (
	"database/sql"
	"os"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSQLiteLogAppendsTranscript(t *testing.T) {
	f, err := os.CreateTemp("", "forth-history-*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	log, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}

	if err := log.Append("1 2 +"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append("! [BAD WORD] Unknown word 'X'"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM transcript").Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 2 {
		t.Fatalf("transcript row count = %d, want 2", count)
	}

	var version string
	if err := db.QueryRow("SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&version); err != nil {
		t.Fatalf("schema_version query: %v", err)
	}
	if version != schemaVersion {
		t.Fatalf("schema_version = %q, want %q", version, schemaVersion)
	}
}

func TestSQLiteLogIsReopenable(t *testing.T) {
	f, err := os.CreateTemp("", "forth-history-*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	first, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite (first): %v", err)
	}
	first.Append("line one")
	first.Close()

	second, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite (second, reopen): %v", err)
	}
	defer second.Close()
	if err := second.Append("line two"); err != nil {
		t.Fatalf("Append after reopen: %v", err)
	}
}
