package eventlog

import (
	"path/filepath"
	"testing"

	"github.com/cmarkham/livedisplay/internal/settings"
)

func tempLog(t *testing.T) *Log {
	t.Helper()
	store, err := settings.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	l, err := New(store.DB())
	if err != nil {
		t.Fatalf("new log: %v", err)
	}
	return l
}

func TestAppendAndReadBack(t *testing.T) {
	l := tempLog(t)
	if err := l.Append("display", `{"display":"on"}`); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := l.Append("twilight", `{"is_night":true}`); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := l.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Kind != "display" || all[0].ValueJSON != `{"display":"on"}` {
		t.Fatalf("first entry wrong: %+v", all[0])
	}
	if all[0].Seq >= all[1].Seq {
		t.Fatal("All must return dispatch order")
	}
	if all[0].CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	l := tempLog(t)
	for _, kind := range []string{"display", "low_power", "twilight", "mode"} {
		if err := l.Append(kind, "{}"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := l.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Kind != "mode" || recent[1].Kind != "twilight" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].Kind, recent[1].Kind)
	}
}

func TestRecordSwallowsFailures(t *testing.T) {
	store, err := settings.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	l, err := New(store.DB())
	if err != nil {
		t.Fatalf("new log: %v", err)
	}
	store.Close()

	l.Record("display", `{"display":"on"}`) // closed db: logged, not panicked
}
