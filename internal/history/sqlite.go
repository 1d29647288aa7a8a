package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// SQLite is a Log backed by a SQLite database, written to but never
// queried by the interpreter itself. The schema mirrors a small
// schema-versioned metadata table plus an append-only transcript table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) a SQLite-backed Log at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS metadata (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS transcript (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	line        TEXT NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO metadata(key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("stamp history schema version: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Append(line string) error {
	_, err := s.db.Exec(`INSERT INTO transcript(line) VALUES (?)`, line)
	if err != nil {
		return fmt.Errorf("append history line: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
