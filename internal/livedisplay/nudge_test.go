package livedisplay

import (
	"testing"

	"github.com/cmarkham/livedisplay/internal/settings"
)

// #region capture-notifier

type captureNotifier struct {
	fired []Notification
}

func (n *captureNotifier) Notify(notif Notification) {
	n.fired = append(n.fired, notif)
}

// #endregion capture-notifier

func night() TwilightState {
	return TwilightState{IsNight: true}
}

func day() TwilightState {
	return TwilightState{IsNight: false}
}

func TestNudgeFiresAfterThreeSunsets(t *testing.T) {
	store := settings.NewMemory()
	notifier := &captureNotifier{}
	p := NewNudgePolicy(store, notifier, 0)

	if !p.Awaiting() {
		t.Fatal("fresh policy should be counting")
	}

	// Three day->night edges; the third reaches zero and fires.
	for i := 0; i < 3; i++ {
		p.Observe(day())
		p.Observe(night())
	}

	if len(notifier.fired) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifier.fired))
	}
	if notifier.fired[0].Key == "" {
		t.Fatal("notification key should be set")
	}
	if !notifier.fired[0].AutoCancel {
		t.Fatal("notification should auto-cancel")
	}
	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter should be forced to 1 after firing, got %d", got)
	}
	if p.Awaiting() {
		t.Fatal("policy should be dormant after firing")
	}
}

func TestRepeatedNightIsNotATransition(t *testing.T) {
	store := settings.NewMemory()
	notifier := &captureNotifier{}
	p := NewNudgePolicy(store, notifier, 0)

	p.Observe(night())
	p.Observe(night())
	p.Observe(night())

	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != -2 {
		t.Fatalf("only the first night counts as an edge: expected -2, got %d", got)
	}
	if len(notifier.fired) != 0 {
		t.Fatal("no notification expected")
	}
}

func TestCounterMinusOneFiresOnNextEdge(t *testing.T) {
	store := settings.NewMemory()
	store.PutInt(0, KeyHinted, -1)
	notifier := &captureNotifier{}
	p := NewNudgePolicy(store, notifier, 0)

	p.Observe(night())
	if len(notifier.fired) != 1 {
		t.Fatalf("expected notification on the edge reaching 0, got %d", len(notifier.fired))
	}
	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter should be 1, got %d", got)
	}

	// Second edge while dormant: no further change.
	p.Observe(day())
	p.Observe(night())
	if len(notifier.fired) != 1 {
		t.Fatal("dormant policy must not fire again")
	}
	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter must stay at 1, got %d", got)
	}
}

func TestStopNudgingSuppressesSilently(t *testing.T) {
	store := settings.NewMemory()
	notifier := &captureNotifier{}
	p := NewNudgePolicy(store, notifier, 0)

	p.Observe(night()) // -3 -> -2
	p.StopNudging()

	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter should be forced to 1, got %d", got)
	}
	if len(notifier.fired) != 0 {
		t.Fatal("StopNudging must not fire a notification")
	}

	// Subsequent transitions are inert.
	p.Observe(day())
	p.Observe(night())
	if len(notifier.fired) != 0 {
		t.Fatal("no notification after suppression")
	}
	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter must stay at 1, got %d", got)
	}
}

func TestStopNudgingWhileDormantIsNoOp(t *testing.T) {
	store := settings.NewMemory()
	store.PutInt(0, KeyHinted, 1)
	p := NewNudgePolicy(store, &captureNotifier{}, 0)

	if p.Awaiting() {
		t.Fatal("counter 1 should start dormant")
	}
	p.StopNudging()
	if got := store.GetInt(0, KeyHinted, defaultSunsetCounter); got != 1 {
		t.Fatalf("counter untouched, got %d", got)
	}
}

func TestNudgePersistsAcrossRestart(t *testing.T) {
	store := settings.NewMemory()
	notifier := &captureNotifier{}

	p := NewNudgePolicy(store, notifier, 0)
	for i := 0; i < 3; i++ {
		p.Observe(day())
		p.Observe(night())
	}
	if len(notifier.fired) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.fired))
	}

	// Same store, new boot: counter is 1, policy dormant forever.
	p2 := NewNudgePolicy(store, notifier, 0)
	if p2.Awaiting() {
		t.Fatal("rebooted policy should be dormant")
	}
	for i := 0; i < 5; i++ {
		p2.Observe(day())
		p2.Observe(night())
	}
	if len(notifier.fired) != 1 {
		t.Fatal("nudge fires at most once ever")
	}
}

func TestDormantStillTracksEdges(t *testing.T) {
	store := settings.NewMemory()
	store.PutInt(0, KeyHinted, 1)
	p := NewNudgePolicy(store, &captureNotifier{}, 0)

	// Edge detector advances even while dormant.
	p.Observe(night())
	if !p.sunset {
		t.Fatal("previous-night flag should update while dormant")
	}
	p.Observe(day())
	if p.sunset {
		t.Fatal("previous-night flag should clear on day")
	}
}
