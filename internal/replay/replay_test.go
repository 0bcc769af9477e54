package replay

import (
	"bytes"
	"testing"

	"github.com/cmarkham/livedisplay/internal/livedisplay"
)

func night() Event { return Event{Kind: "twilight", IsNight: true} }
func day() Event   { return Event{Kind: "twilight", IsNight: false} }

func TestReplayMarksDeduplicatedEvents(t *testing.T) {
	events := []Event{
		{Kind: "display", Display: "on"},
		{Kind: "display", Display: "on"},
		{Kind: "display", Display: "off"},
	}
	results, summary, err := Replay(events, DefaultConfig())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !results[0].Applied || results[1].Applied || !results[2].Applied {
		t.Fatalf("expected applied/dedup/applied, got %+v", results)
	}
	if summary.Applied != 2 || summary.Deduplicated != 1 {
		t.Fatalf("summary wrong: %+v", summary)
	}
	if results[2].Display != livedisplay.DisplayOff {
		t.Fatalf("final display state wrong: %v", results[2].Display)
	}
}

func TestReplayNudgeFiresOnThirdSunset(t *testing.T) {
	events := []Event{night(), day(), night(), day(), night()}
	results, summary, err := Replay(events, DefaultConfig())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	for i := 0; i < 4; i++ {
		if results[i].Notified {
			t.Fatalf("premature notification at event %d", i)
		}
	}
	if !results[4].Notified {
		t.Fatal("third sunset must notify")
	}
	if summary.Notifications != 1 {
		t.Fatalf("expected exactly one notification, got %d", summary.Notifications)
	}
	if summary.FinalCounter != 1 {
		t.Fatalf("counter must be forced to 1 after the nudge, got %d", summary.FinalCounter)
	}
}

func TestReplayModeInteractionSuppressesNudge(t *testing.T) {
	events := []Event{night(), day(), {Kind: "mode", Mode: 2}, night(), day(), night()}
	results, summary, err := Replay(events, DefaultConfig())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if summary.Notifications != 0 {
		t.Fatal("a mode interaction must silence the nudge for good")
	}
	if results[2].Mode != livedisplay.ModeAuto {
		t.Fatalf("mode event should apply auto, got %v", results[2].Mode)
	}
	if summary.FinalMode != livedisplay.ModeAuto {
		t.Fatalf("final mode wrong: %v", summary.FinalMode)
	}
	if summary.FinalCounter != 1 {
		t.Fatalf("interaction should park the counter at 1, got %d", summary.FinalCounter)
	}
}

func TestReplaySeedsInitialState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialMode = int(livedisplay.ModeNight)
	cfg.InitialCounter = 1 // already nudged

	events := []Event{{Kind: "mode", Mode: int(livedisplay.ModeNight)}, night()}
	_, summary, err := Replay(events, cfg)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if summary.FinalMode != livedisplay.ModeNight {
		t.Fatalf("seeded mode lost: %v", summary.FinalMode)
	}
	if summary.Notifications != 0 {
		t.Fatal("an already-hinted device must not notify again")
	}
}

func TestReplayRejectsUnknownKind(t *testing.T) {
	if _, _, err := Replay([]Event{{Kind: "boot"}}, DefaultConfig()); err == nil {
		t.Fatal("unknown kind must fail the replay")
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	in := Fixture{Events: []Event{
		{Kind: "display", Display: "on"},
		{Kind: "twilight", IsNight: true},
		{Kind: "mode", Mode: 2},
	}}
	var buf bytes.Buffer
	if err := Save(&buf, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Events) != 3 || out.Events[1].IsNight != true || out.Events[2].Mode != 2 {
		t.Fatalf("round trip lost data: %+v", out.Events)
	}
}
