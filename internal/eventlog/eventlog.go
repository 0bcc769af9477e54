// Package eventlog persists the dispatched event stream to SQLite so
// sessions can be inspected after the fact and exported as replay
// fixtures.
package eventlog

// #region imports
import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS event_log (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       TEXT NOT NULL,
	value_json TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// #endregion schema

// #region log

// Entry is one persisted event.
type Entry struct {
	Seq       int64
	Kind      string
	ValueJSON string
	CreatedAt time.Time
}

// Log appends and reads the event stream. It shares the settings
// database so one file holds the whole service state.
type Log struct {
	db *sql.DB
}

// New runs migrations and returns a log over db.
func New(db *sql.DB) (*Log, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate event_log: %w", err)
	}
	return &Log{db: db}, nil
}

// Append stores one event.
func (l *Log) Append(kind, valueJSON string) error {
	_, err := l.db.Exec(
		`INSERT INTO event_log (kind, value_json, created_at) VALUES (?, ?, ?)`,
		kind, valueJSON, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append %s: %w", kind, err)
	}
	return nil
}

// Record implements the dispatcher's recorder hook. Storage failures
// are logged and swallowed; event dispatch must never stall on the
// log.
func (l *Log) Record(kind, valueJSON string) {
	if err := l.Append(kind, valueJSON); err != nil {
		log.Printf("[ELOG] %v", err)
	}
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT seq, kind, value_json, created_at FROM event_log ORDER BY seq DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	return scanEntries(rows)
}

// All returns every entry in dispatch order.
func (l *Log) All() ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT seq, kind, value_json, created_at FROM event_log ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("all: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var createdMilli int64
		if err := rows.Scan(&e.Seq, &e.Kind, &e.ValueJSON, &createdMilli); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdMilli)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion log
