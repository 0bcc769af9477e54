package livedisplay

// #region imports
import (
	"fmt"
	"io"
	"log"

	"github.com/cmarkham/livedisplay/internal/hardware"
)

// #endregion imports

const featureOutdoorMode = "outdoor_mode"

// #region outdoor-mode

// OutdoorModeController drives the sunlight enhancement flag. Outdoor mode
// engages when selected explicitly, or in auto mode during daytime. Some
// panels manage this themselves from their ambient sensor; in that case
// the controller only ever toggles on explicit selection.
type OutdoorModeController struct {
	hw Hardware

	selfManaged bool
	isNight     bool
	mode        Mode
	active      bool
}

// NewOutdoorModeController returns an unstarted controller.
func NewOutdoorModeController(hw Hardware) *OutdoorModeController {
	return &OutdoorModeController{hw: hw}
}

func (c *OutdoorModeController) Name() string {
	return featureOutdoorMode
}

// OnStart requires the sunlight enhancement control.
func (c *OutdoorModeController) OnStart() bool {
	if !c.hw.Supported(hardware.SunlightEnhancement) {
		return false
	}
	c.selfManaged = c.hw.Supported(hardware.AutoContrast)
	return true
}

func (c *OutdoorModeController) Capabilities() CapabilitySet {
	caps := CapModeOutdoor
	if c.selfManaged {
		caps |= CapManagedOutdoorMode
	}
	return caps
}

func (c *OutdoorModeController) OnDisplayStateChanged(bool) {}

func (c *OutdoorModeController) OnLowPowerModeChanged(bool) {}

func (c *OutdoorModeController) OnTwilightUpdated(t TwilightState) {
	c.isNight = t.IsNight
	c.apply()
}

func (c *OutdoorModeController) OnModeChanged(m Mode) {
	c.mode = m
	c.apply()
}

func (c *OutdoorModeController) apply() {
	want := c.mode == ModeOutdoor
	if !c.selfManaged && c.mode == ModeAuto && !c.isNight {
		want = true
	}
	if want == c.active {
		return
	}
	c.active = want
	if _, err := c.hw.Set(hardware.SunlightEnhancement, want); err != nil {
		log.Printf("[DISP] sunlight enhancement: %v", err)
	}
}

func (c *OutdoorModeController) Dump(w io.Writer) {
	fmt.Fprintf(w, "  %s: active=%v selfManaged=%v isNight=%v mode=%s\n",
		featureOutdoorMode, c.active, c.selfManaged, c.isNight, c.mode)
}

// #endregion outdoor-mode
