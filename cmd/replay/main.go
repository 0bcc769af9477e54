package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cmarkham/livedisplay/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	user := flag.Int("user", 0, "user id for the replay session")
	counter := flag.Int("counter", -3, "initial sunset counter")
	mode := flag.Int("mode", 0, "initial display mode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--user N] [--counter N] [--mode N] [--json]")
		os.Exit(2)
	}

	if err := run(*fixturePath, replay.Config{User: *user, InitialCounter: *counter, InitialMode: *mode}, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

type output struct {
	Results []replay.Result `json:"results"`
	Summary replay.Summary  `json:"summary"`
}

func run(fixturePath string, cfg replay.Config, jsonOut bool) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fixture, err := replay.Load(f)
	if err != nil {
		return err
	}

	results, summary, err := replay.Replay(fixture.Events, cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output{Results: results, Summary: summary})
	}

	for _, r := range results {
		status := "applied"
		if !r.Applied {
			status = "dedup"
		}
		note := ""
		if r.Notified {
			note = "  << nudge fired"
		}
		fmt.Printf("  #%-4d %-10s %-8s mode=%-8s display=%s%s\n",
			r.Index, r.Kind, status, r.Mode, r.Display, note)
	}

	fmt.Printf("\n%d events: %d applied, %d deduplicated, %d notification(s)\n",
		summary.Events, summary.Applied, summary.Deduplicated, summary.Notifications)
	fmt.Printf("final: mode=%s counter=%d\n", summary.FinalMode, summary.FinalCounter)
	return nil
}

// #endregion run
