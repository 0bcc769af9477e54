package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cmarkham/livedisplay/internal/eventlog"
	"github.com/cmarkham/livedisplay/internal/replay"
	"github.com/cmarkham/livedisplay/internal/settings"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to livedisplay.db")
	last := flag.Int("last", 0, "export only the N most recent events (0 = all)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/livedisplay.db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath string, last int, outPath string) error {
	store, err := settings.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	elog, err := eventlog.New(store.DB())
	if err != nil {
		return err
	}

	entries, err := elog.All()
	if err != nil {
		return err
	}
	if last > 0 && len(entries) > last {
		entries = entries[len(entries)-last:]
	}

	fixture := replay.Fixture{}
	for _, e := range entries {
		ev, err := toEvent(e)
		if err != nil {
			return fmt.Errorf("entry #%d: %w", e.Seq, err)
		}
		fixture.Events = append(fixture.Events, ev)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer out.Close()

	if err := replay.Save(out, fixture); err != nil {
		return err
	}
	fmt.Printf("exported %d event(s) to %s\n", len(fixture.Events), outPath)
	return nil
}

// toEvent rebuilds a fixture event from a persisted log entry. The
// value document is keyed by kind, matching what the recorder wrote.
func toEvent(e eventlog.Entry) (replay.Event, error) {
	ev := replay.Event{Kind: e.Kind}
	if err := json.Unmarshal([]byte(e.ValueJSON), &ev); err != nil {
		return ev, fmt.Errorf("parse %s value %q: %w", e.Kind, e.ValueJSON, err)
	}
	return ev, nil
}

// #endregion export
