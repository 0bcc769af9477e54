package settings

// #region imports
import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// #endregion imports

// #region store-interface

// Store is the persisted per-user integer key/value surface. It is injected
// into anything that needs durable settings so tests can swap in Memory.
type Store interface {
	// GetInt returns the stored value for (user, key), or def when the key
	// is absent or the read fails.
	GetInt(user int, key string, def int) int
	// PutInt stores value for (user, key), replacing any previous value.
	PutInt(user int, key string, value int) error
}

// #endregion store-interface

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS settings (
	user_id  INTEGER NOT NULL,
	key      TEXT NOT NULL,
	value    INTEGER NOT NULL,
	PRIMARY KEY (user_id, key)
);
`

// #endregion schema

// #region sql-store

// SQLStore persists settings in SQLite.
type SQLStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database and runs migrations.
func Open(dbPath string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. eventlog).
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// GetInt reads one setting. Absent rows and read failures both fall back to
// def; a read failure is logged since it signals a real storage problem.
func (s *SQLStore) GetInt(user int, key string, def int) int {
	var value int
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE user_id = ? AND key = ?`, user, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return def
	}
	if err != nil {
		log.Printf("[SET] read %s for user %d: %v", key, user, err)
		return def
	}
	return value
}

// PutInt upserts one setting.
func (s *SQLStore) PutInt(user int, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (user_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value`,
		user, key, value,
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// #endregion sql-store
