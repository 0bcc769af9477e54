package livedisplay

// #region imports
import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/cmarkham/livedisplay/internal/settings"
)

// #endregion imports

// #region events

type eventKind int

const (
	eventDisplayChanged eventKind = iota + 1
	eventLowPowerChanged
	eventTwilightUpdated
	eventModeChanged
	eventFlush
)

func (k eventKind) String() string {
	switch k {
	case eventDisplayChanged:
		return "display"
	case eventLowPowerChanged:
		return "low_power"
	case eventTwilightUpdated:
		return "twilight"
	case eventModeChanged:
		return "mode"
	default:
		return "flush"
	}
}

type event struct {
	kind     eventKind
	display  DisplayState
	lowPower bool
	twilight TwilightState
	ack      chan struct{} // flush only
}

// #endregion events

// #region recorder

// EventRecorder receives every event the worker actually applied
// (deduplicated and pre-boot events are not recorded). The value is a
// small JSON document keyed by the event kind.
type EventRecorder interface {
	Record(kind string, valueJSON string)
}

// #endregion recorder

// #region service

// Service is the LiveDisplay core: a single-worker dispatcher that
// serializes display, low-power, twilight, and mode events onto one
// logical queue and fans each out to every live feature in registration
// order. Producers post from arbitrary goroutines; exactly one worker
// drains, so feature callbacks never race each other.
type Service struct {
	store    settings.Store
	notifier Notifier
	user     int

	registry *Registry
	nudge    *NudgePolicy
	recorder EventRecorder

	inbox     chan event
	done      chan struct{}
	closeOnce sync.Once
	postMu    sync.Mutex
	closed    bool

	booted atomic.Bool

	// Cached external state, guarded by mu. The worker mutates these inside
	// the terminal update methods; Snapshot and Dump read under the same
	// lock. Feature callbacks run while mu is held.
	mu           sync.Mutex
	displayState DisplayState
	lowPower     bool
	mode         Mode
	twilight     TwilightState
}

const inboxSize = 64

// NewService creates the service and starts its worker. Events posted
// before Boot completes are silently dropped.
func NewService(store settings.Store, notifier Notifier, user int) *Service {
	s := &Service{
		store:    store,
		notifier: notifier,
		user:     user,
		registry: NewRegistry(),
		inbox:    make(chan event, inboxSize),
		done:     make(chan struct{}),
	}
	go s.worker()
	return s
}

// SetRecorder installs an event recorder. Call before Boot.
func (s *Service) SetRecorder(r EventRecorder) {
	s.recorder = r
}

// Boot registers the feature set, derives the nudge state from the
// persisted counter, and opens the dispatcher for events. One-shot.
func (s *Service) Boot(features ...Feature) {
	if s.booted.Load() {
		return
	}
	s.registry.Register(features...)
	s.nudge = NewNudgePolicy(s.store, s.notifier, s.user)
	s.booted.Store(true)
	log.Printf("[DISP] boot complete: %d live features, caps=%#x", s.registry.Live(), uint64(s.registry.Capabilities()))
}

// Close stops intake, drains the inbox, and waits for the worker to exit.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.postMu.Lock()
		s.closed = true
		close(s.inbox)
		s.postMu.Unlock()
	})
	<-s.done
}

// #endregion service

// #region producers

// PostDisplayState enqueues a display power-state change.
func (s *Service) PostDisplayState(state DisplayState) {
	s.post(event{kind: eventDisplayChanged, display: state})
}

// PostLowPowerMode enqueues a battery-saver state change.
func (s *Service) PostLowPowerMode(lowPower bool) {
	s.post(event{kind: eventLowPowerChanged, lowPower: lowPower})
}

// PostTwilight enqueues a twilight update. Never deduplicated: the nudge
// policy must observe every update to detect edges.
func (s *Service) PostTwilight(t TwilightState) {
	s.post(event{kind: eventTwilightUpdated, twilight: t})
}

// PostModeChanged signals that the persisted mode setting changed. The
// current value is read from the settings store when the event is handled.
func (s *Service) PostModeChanged() {
	s.post(event{kind: eventModeChanged})
}

// Flush blocks until every event posted before it has been handled.
func (s *Service) Flush() {
	ack := make(chan struct{})
	s.postMu.Lock()
	if s.closed {
		s.postMu.Unlock()
		return
	}
	s.inbox <- event{kind: eventFlush, ack: ack}
	s.postMu.Unlock()
	<-ack
}

func (s *Service) post(ev event) {
	s.postMu.Lock()
	defer s.postMu.Unlock()
	if s.closed {
		return
	}
	s.inbox <- ev
}

// #endregion producers

// #region worker

func (s *Service) worker() {
	defer close(s.done)
	for ev := range s.inbox {
		s.process(ev)
	}
}

func (s *Service) process(ev event) {
	if ev.kind == eventFlush {
		close(ev.ack)
		return
	}
	// Inert until boot: partially initialized features must not observe state.
	if !s.booted.Load() {
		return
	}

	switch ev.kind {
	case eventDisplayChanged:
		s.updateDisplayState(ev.display)
	case eventLowPowerChanged:
		s.updateLowPowerMode(ev.lowPower)
	case eventTwilightUpdated:
		s.updateTwilight(ev.twilight)
		s.nudge.Observe(ev.twilight)
		s.record("twilight", recordedTwilight{IsNight: ev.twilight.IsNight})
	case eventModeChanged:
		s.nudge.StopNudging()
		mode := s.currentMode()
		s.updateMode(mode)
		s.record("mode", recordedMode{Mode: int(mode)})
	}
}

func (s *Service) currentMode() Mode {
	return Mode(s.store.GetInt(s.user, KeyTemperatureMode, int(ModeOff)))
}

// #endregion worker

// #region terminal-updates

func (s *Service) updateDisplayState(state DisplayState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.displayState == state {
		return
	}
	s.displayState = state
	screenOn := state == DisplayOn
	s.registry.ForEachLive(func(f Feature) { f.OnDisplayStateChanged(screenOn) })
	s.record("display", recordedDisplay{Display: state.String()})
}

func (s *Service) updateLowPowerMode(lowPower bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lowPower == lowPower {
		return
	}
	s.lowPower = lowPower
	s.registry.ForEachLive(func(f Feature) { f.OnLowPowerModeChanged(lowPower) })
	s.record("low_power", recordedLowPower{LowPower: lowPower})
}

func (s *Service) updateTwilight(t TwilightState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.twilight = t
	s.registry.ForEachLive(func(f Feature) { f.OnTwilightUpdated(t) })
}

func (s *Service) updateMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.registry.ForEachLive(func(f Feature) { f.OnModeChanged(mode) })
}

// #endregion terminal-updates

// #region recording

type recordedDisplay struct {
	Display string `json:"display"`
}

type recordedLowPower struct {
	LowPower bool `json:"low_power"`
}

type recordedTwilight struct {
	IsNight bool `json:"is_night"`
}

type recordedMode struct {
	Mode int `json:"mode"`
}

func (s *Service) record(kind string, value any) {
	if s.recorder == nil {
		return
	}
	buf, err := json.Marshal(value)
	if err != nil {
		log.Printf("[DISP] record %s: %v", kind, err)
		return
	}
	s.recorder.Record(kind, string(buf))
}

// #endregion recording

// #region read-surface

// Snapshot is a point-in-time copy of the cached dispatcher state.
type Snapshot struct {
	Display      DisplayState
	LowPower     bool
	Mode         Mode
	Twilight     TwilightState
	Capabilities CapabilitySet
}

// Snapshot returns the cached state under the dispatcher lock.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Display:      s.displayState,
		LowPower:     s.lowPower,
		Mode:         s.mode,
		Twilight:     s.twilight,
		Capabilities: s.registry.Capabilities(),
	}
}

// Capabilities returns the aggregate capability set computed at boot.
func (s *Service) Capabilities() CapabilitySet {
	return s.registry.Capabilities()
}

// Mode returns the cached mode.
func (s *Service) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Service) colorTemperatureFeature() *ColorTemperatureController {
	ctc, _ := s.registry.Find(featureColorTemperature).(*ColorTemperatureController)
	return ctc
}

// DefaultDayTemperature returns the default day color temperature, or 0
// when the color-temperature feature is absent.
func (s *Service) DefaultDayTemperature() int {
	if ctc := s.colorTemperatureFeature(); ctc != nil {
		return ctc.DefaultDayTemperature()
	}
	return 0
}

// DefaultNightTemperature returns the default night color temperature, or
// 0 when the color-temperature feature is absent.
func (s *Service) DefaultNightTemperature() int {
	if ctc := s.colorTemperatureFeature(); ctc != nil {
		return ctc.DefaultNightTemperature()
	}
	return 0
}

// ColorTemperature returns the current color temperature, or 0 when the
// color-temperature feature is absent. The worker mutates the controller
// under mu, so the read takes the same lock.
func (s *Service) ColorTemperature() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctc := s.colorTemperatureFeature(); ctc != nil {
		return ctc.ColorTemperature()
	}
	return 0
}

// Dump writes the dispatcher state followed by each live feature.
// Diagnostic only; readers may observe transient state between events.
func (s *Service) Dump(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(w, "LiveDisplay service state:")
	fmt.Fprintf(w, "  mode=%s\n", s.mode)
	fmt.Fprintf(w, "  display=%s\n", s.displayState)
	fmt.Fprintf(w, "  lowPower=%v\n", s.lowPower)
	fmt.Fprintf(w, "  twilight: isNight=%v\n", s.twilight.IsNight)
	fmt.Fprintf(w, "  capabilities=%#x\n", uint64(s.registry.Capabilities()))
	if s.nudge != nil {
		s.nudge.Dump(w)
	}
	s.registry.Dump(w)
}

// #endregion read-surface
