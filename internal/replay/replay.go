// Package replay re-drives a recorded event stream through a real
// dispatcher, offline. Fixtures come from the persisted event log (or
// are written by hand) and carry the same JSON shapes the recorder
// emits, so a captured session replays bit-for-bit.
package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/cmarkham/livedisplay/internal/livedisplay"
	"github.com/cmarkham/livedisplay/internal/settings"
)

// #endregion imports

// #region fixture

// Event is one fixture entry. Kind selects which value field applies:
// "display" uses Display, "low_power" uses LowPower, "twilight" uses
// IsNight, "mode" uses Mode.
type Event struct {
	Kind     string `json:"kind"`
	Display  string `json:"display,omitempty"`
	LowPower bool   `json:"low_power,omitempty"`
	IsNight  bool   `json:"is_night,omitempty"`
	Mode     int    `json:"mode,omitempty"`
}

// Fixture is a replayable event stream.
type Fixture struct {
	Events []Event `json:"events"`
}

// Load reads a JSON fixture.
func Load(r io.Reader) (Fixture, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return f, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

// Save writes f as indented JSON.
func Save(w io.Writer, f Fixture) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return nil
}

// #endregion fixture

// #region config

// Config seeds the replay session.
type Config struct {
	User           int
	InitialCounter int
	InitialMode    int
}

// DefaultConfig matches a factory-fresh device: counter three sunsets
// from the nudge, mode off.
func DefaultConfig() Config {
	return Config{User: 0, InitialCounter: -3, InitialMode: 0}
}

// #endregion config

// #region results

// Result is the observable outcome of one replayed event.
type Result struct {
	Index    int
	Kind     string
	Applied  bool
	Notified bool
	Mode     livedisplay.Mode
	Display  livedisplay.DisplayState
}

// Summary aggregates a whole replay.
type Summary struct {
	Events        int
	Applied       int
	Deduplicated  int
	Notifications int
	FinalMode     livedisplay.Mode
	FinalCounter  int
}

// #endregion results

// #region capture

type captureNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *captureNotifier) Notify(livedisplay.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

func (n *captureNotifier) total() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}

type captureRecorder struct {
	mu    sync.Mutex
	count int
}

func (r *captureRecorder) Record(string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func (r *captureRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// #endregion capture

// #region harness

// Replay drives events through a fresh dispatcher backed by an
// in-memory store. Each event is flushed before the next so results
// line up one-to-one with the fixture.
func Replay(events []Event, cfg Config) ([]Result, Summary, error) {
	store := settings.NewMemory()
	if err := store.PutInt(cfg.User, livedisplay.KeyHinted, cfg.InitialCounter); err != nil {
		return nil, Summary{}, err
	}
	if err := store.PutInt(cfg.User, livedisplay.KeyTemperatureMode, cfg.InitialMode); err != nil {
		return nil, Summary{}, err
	}

	notifier := &captureNotifier{}
	recorder := &captureRecorder{}

	svc := livedisplay.NewService(store, notifier, cfg.User)
	defer svc.Close()
	svc.SetRecorder(recorder)
	svc.Boot()

	results := make([]Result, 0, len(events))
	summary := Summary{Events: len(events)}
	for i, ev := range events {
		if err := post(svc, store, cfg.User, ev); err != nil {
			return nil, Summary{}, fmt.Errorf("event %d: %w", i, err)
		}
		svc.Flush()

		snap := svc.Snapshot()
		r := Result{
			Index:    i,
			Kind:     ev.Kind,
			Applied:  recorder.total() > summary.Applied,
			Notified: notifier.total() > summary.Notifications,
			Mode:     snap.Mode,
			Display:  snap.Display,
		}
		summary.Applied = recorder.total()
		summary.Notifications = notifier.total()
		results = append(results, r)
	}

	summary.Deduplicated = summary.Events - summary.Applied
	summary.FinalMode = svc.Mode()
	summary.FinalCounter = store.GetInt(cfg.User, livedisplay.KeyHinted, cfg.InitialCounter)
	return results, summary, nil
}

func post(svc *livedisplay.Service, store settings.Store, user int, ev Event) error {
	switch ev.Kind {
	case "display":
		svc.PostDisplayState(livedisplay.ParseDisplayState(ev.Display))
	case "low_power":
		svc.PostLowPowerMode(ev.LowPower)
	case "twilight":
		svc.PostTwilight(livedisplay.TwilightState{IsNight: ev.IsNight})
	case "mode":
		if err := store.PutInt(user, livedisplay.KeyTemperatureMode, ev.Mode); err != nil {
			return err
		}
		svc.PostModeChanged()
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	return nil
}

// #endregion harness
