package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cmarkham/livedisplay/internal/eventlog"
	"github.com/cmarkham/livedisplay/internal/livedisplay"
	"github.com/cmarkham/livedisplay/internal/settings"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to livedisplay.db")
	user := flag.Int("user", 0, "user id to inspect")
	last := flag.Int("last", 20, "show N most recent events")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/livedisplay.db [--user N] [--last N] [--json]")
		os.Exit(2)
	}

	store, err := settings.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *user, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type settingRow struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

type report struct {
	User     int              `json:"user"`
	Settings []settingRow     `json:"settings"`
	Mode     string           `json:"mode"`
	Nudge    string           `json:"nudge"`
	Events   []eventlog.Entry `json:"events"`
}

func run(store *settings.SQLStore, user, last int, jsonOut bool) error {
	rows, err := loadSettings(store.DB(), user)
	if err != nil {
		return err
	}

	elog, err := eventlog.New(store.DB())
	if err != nil {
		return err
	}
	events, err := elog.Recent(last)
	if err != nil {
		return err
	}

	mode := livedisplay.Mode(store.GetInt(user, livedisplay.KeyTemperatureMode, 0))
	rep := report{
		User:     user,
		Settings: rows,
		Mode:     mode.String(),
		Nudge:    describeNudge(store, user),
		Events:   events,
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Printf("user %d  mode=%s\n", user, rep.Mode)
	fmt.Printf("nudge: %s\n\n", rep.Nudge)

	fmt.Println("settings:")
	if len(rows) == 0 {
		fmt.Println("  (none)")
	}
	for _, r := range rows {
		fmt.Printf("  %-28s %d\n", r.Key, r.Value)
	}

	fmt.Printf("\nlast %d events:\n", len(events))
	for _, e := range events {
		fmt.Printf("  #%-5d %-10s %-30s %s\n", e.Seq, e.Kind, e.ValueJSON, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func loadSettings(db *sql.DB, user int) ([]settingRow, error) {
	rows, err := db.Query(`SELECT key, value FROM settings WHERE user_id = ? ORDER BY key`, user)
	if err != nil {
		return nil, fmt.Errorf("settings query: %w", err)
	}
	defer rows.Close()

	var out []settingRow
	for rows.Next() {
		var r settingRow
		if err := rows.Scan(&r.Key, &r.Value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// describeNudge translates the persisted sunset counter into words.
func describeNudge(store *settings.SQLStore, user int) string {
	counter := store.GetInt(user, livedisplay.KeyHinted, -3)
	switch {
	case counter < 0:
		return fmt.Sprintf("counter=%d, %d sunset(s) until the hint", counter, -counter)
	case counter == 0:
		return "counter=0, hint firing (transient state)"
	default:
		return fmt.Sprintf("counter=%d, hinted (or dismissed), never fires again", counter)
	}
}

// #endregion report
