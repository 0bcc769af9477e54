package livedisplay

import (
	"io"

	"github.com/cmarkham/livedisplay/internal/hardware"
)

// #region feature-interface

// Feature is a pluggable capability provider reacting to system-state
// events. Features are constructed at service boot; OnStart is attempted
// once and a failing feature is permanently excluded from dispatch.
// All On* callbacks run on the service worker, never concurrently, and
// with the dispatcher lock held: a callback must not call back into the
// service read surface (Mode, Snapshot, ColorTemperature, Dump) or it
// will deadlock.
type Feature interface {
	Name() string

	// OnStart initializes the feature. Returning false excludes the
	// feature from dispatch for the process lifetime.
	OnStart() bool

	// Capabilities returns the capability bits this feature contributes
	// to the aggregate set. Only called after a successful OnStart.
	Capabilities() CapabilitySet

	OnDisplayStateChanged(screenOn bool)
	OnLowPowerModeChanged(lowPower bool)
	OnTwilightUpdated(t TwilightState)
	OnModeChanged(m Mode)

	// Dump writes diagnostic state. No side effects.
	Dump(w io.Writer)
}

// #endregion feature-interface

// #region hardware-interface

// Hardware is the subset of the hardware broker client the display
// features depend on, abstracted so tests can inject a fake.
type Hardware interface {
	Supported(f hardware.Flag) bool
	Get(f hardware.Flag) (bool, error)
	Set(f hardware.Flag, enable bool) (bool, error)
	DisplayColorCalibration() []int
	DisplayColorCalibrationMin() int
	DisplayColorCalibrationMax() int
	SetDisplayColorCalibration(rgb []int) bool
}

// #endregion hardware-interface
