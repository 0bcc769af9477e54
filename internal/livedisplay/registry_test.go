package livedisplay

import (
	"fmt"
	"io"
	"testing"
)

// #region scripted-feature

// scriptedFeature records every callback it receives.
type scriptedFeature struct {
	name      string
	caps      CapabilitySet
	startOK   bool
	panicItem string // callback name that should panic, if any

	started       bool
	displayCalls  []bool
	lowPowerCalls []bool
	twilightCalls []TwilightState
	modeCalls     []Mode
}

func (f *scriptedFeature) Name() string { return f.name }

func (f *scriptedFeature) OnStart() bool {
	f.started = true
	return f.startOK
}

func (f *scriptedFeature) Capabilities() CapabilitySet { return f.caps }

func (f *scriptedFeature) OnDisplayStateChanged(on bool) {
	if f.panicItem == "display" {
		panic("scripted display panic")
	}
	f.displayCalls = append(f.displayCalls, on)
}

func (f *scriptedFeature) OnLowPowerModeChanged(lp bool) {
	f.lowPowerCalls = append(f.lowPowerCalls, lp)
}

func (f *scriptedFeature) OnTwilightUpdated(t TwilightState) {
	f.twilightCalls = append(f.twilightCalls, t)
}

func (f *scriptedFeature) OnModeChanged(m Mode) {
	f.modeCalls = append(f.modeCalls, m)
}

func (f *scriptedFeature) Dump(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", f.name)
}

// #endregion scripted-feature

func TestRegisterAggregatesCapabilities(t *testing.T) {
	r := NewRegistry()
	r.Register(
		&scriptedFeature{name: "a", startOK: true, caps: CapModeNight | CapColorAdjustment},
		&scriptedFeature{name: "b", startOK: true, caps: CapModeOutdoor},
	)

	if r.Live() != 2 {
		t.Fatalf("expected 2 live features, got %d", r.Live())
	}
	want := CapModeNight | CapColorAdjustment | CapModeOutdoor
	if r.Capabilities() != want {
		t.Fatalf("capabilities: expected %#x, got %#x", uint64(want), uint64(r.Capabilities()))
	}
}

func TestFailedStartExcludesFeature(t *testing.T) {
	dead := &scriptedFeature{name: "dead", startOK: false, caps: CapModeOutdoor}
	live := &scriptedFeature{name: "live", startOK: true, caps: CapModeNight}

	r := NewRegistry()
	r.Register(dead, live)

	if r.Live() != 1 {
		t.Fatalf("expected 1 live feature, got %d", r.Live())
	}
	if !dead.started {
		t.Fatal("OnStart must be attempted once")
	}
	if r.Capabilities().Has(CapModeOutdoor) {
		t.Fatal("dead feature must contribute zero capability bits")
	}

	r.ForEachLive(func(f Feature) { f.OnDisplayStateChanged(true) })
	if len(dead.displayCalls) != 0 {
		t.Fatal("dead feature must never receive callbacks")
	}
	if len(live.displayCalls) != 1 {
		t.Fatalf("live feature should receive the callback, got %d", len(live.displayCalls))
	}
}

func TestBroadcastOrderIsRegistrationOrder(t *testing.T) {
	var order []string
	a := &scriptedFeature{name: "a", startOK: true}
	b := &scriptedFeature{name: "b", startOK: true}

	r := NewRegistry()
	r.Register(a, b)
	r.ForEachLive(func(f Feature) { order = append(order, f.Name()) })

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}
}

func TestPanickingFeatureIsIsolated(t *testing.T) {
	boom := &scriptedFeature{name: "boom", startOK: true, panicItem: "display"}
	calm := &scriptedFeature{name: "calm", startOK: true}

	r := NewRegistry()
	r.Register(boom, calm)
	r.ForEachLive(func(f Feature) { f.OnDisplayStateChanged(true) })

	if len(calm.displayCalls) != 1 {
		t.Fatal("broadcast must continue past a panicking feature")
	}
}

func TestPanickingStartCountsAsFailure(t *testing.T) {
	panicky := &panicStartFeature{}
	r := NewRegistry()
	r.Register(panicky)
	if r.Live() != 0 {
		t.Fatal("a panicking OnStart must exclude the feature")
	}
}

type panicStartFeature struct {
	scriptedFeature
}

func (f *panicStartFeature) Name() string  { return "panic_start" }
func (f *panicStartFeature) OnStart() bool { panic("boot failure") }

func TestFindByName(t *testing.T) {
	a := &scriptedFeature{name: "a", startOK: true}
	r := NewRegistry()
	r.Register(a)

	if r.Find("a") != Feature(a) {
		t.Fatal("expected to find feature a")
	}
	if r.Find("missing") != nil {
		t.Fatal("expected nil for unknown name")
	}
}
