package livedisplay

import "time"

// #region display-state

// DisplayState is the last-known power state of the default display.
type DisplayState int

const (
	DisplayUnknown DisplayState = iota
	DisplayOff
	DisplayOn
	DisplayDoze
)

func (d DisplayState) String() string {
	switch d {
	case DisplayOff:
		return "off"
	case DisplayOn:
		return "on"
	case DisplayDoze:
		return "doze"
	default:
		return "unknown"
	}
}

// ParseDisplayState maps the wire/fixture spelling back to a DisplayState.
func ParseDisplayState(s string) DisplayState {
	switch s {
	case "off":
		return DisplayOff
	case "on":
		return DisplayOn
	case "doze":
		return DisplayDoze
	default:
		return DisplayUnknown
	}
}

// #endregion display-state

// #region mode

// Mode is the user-selected display mode, persisted in the settings store.
type Mode int

const (
	ModeOff Mode = iota
	ModeNight
	ModeAuto
	ModeOutdoor
	ModeDay
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeNight:
		return "night"
	case ModeAuto:
		return "auto"
	case ModeOutdoor:
		return "outdoor"
	case ModeDay:
		return "day"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeOff && m <= ModeDay
}

// #endregion mode

// #region twilight

// TwilightState is the day/night indicator supplied by the external solar
// oracle. Always replaced wholesale, never mutated in place.
type TwilightState struct {
	IsNight   bool
	SunsetAt  time.Time
	SunriseAt time.Time
}

// #endregion twilight

// #region capabilities

// CapabilitySet is a fixed-width bit vector aggregating every live
// feature's declared capabilities. Recomputed once at boot, read-only after.
type CapabilitySet uint64

const (
	CapModeOff CapabilitySet = 1 << iota
	CapModeNight
	CapModeAuto
	CapModeOutdoor
	CapModeDay
)

const (
	CapAdaptiveBacklight CapabilitySet = 1 << (iota + 10)
	CapColorEnhancement
	CapColorAdjustment
	CapManagedOutdoorMode
)

// Has reports whether every bit in c is present in s.
func (s CapabilitySet) Has(c CapabilitySet) bool {
	return s&c == c
}

// #endregion capabilities

// #region settings-keys

// Settings keys shared by the service, the nudge policy, and the features.
const (
	KeyTemperatureMode  = "display_temperature_mode"
	KeyHinted           = "live_display_hinted"
	KeyDayTemperature   = "display_temperature_day"
	KeyNightTemperature = "display_temperature_night"
	KeyCABC             = "display_cabc"
	KeyColorEnhance     = "display_color_enhance"
)

// The hint counter starts at -3: three sunsets remaining before the nudge.
const defaultSunsetCounter = -3

// #endregion settings-keys
