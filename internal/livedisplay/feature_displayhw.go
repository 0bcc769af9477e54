package livedisplay

// #region imports
import (
	"fmt"
	"io"
	"log"

	"github.com/cmarkham/livedisplay/internal/hardware"
	"github.com/cmarkham/livedisplay/internal/settings"
)

// #endregion imports

const featureDisplayHardware = "display_hardware"

// #region display-hardware

// DisplayHardwareController bridges the boolean display flags: adaptive
// backlight (CABC) and color enhancement. User preferences for each live
// in the settings store; low-power mode overrides color enhancement off.
type DisplayHardwareController struct {
	hw    Hardware
	store settings.Store
	user  int

	hasCABC     bool
	hasColorEnh bool

	screenOn bool
	lowPower bool
	mode     Mode
}

// NewDisplayHardwareController returns an unstarted controller.
func NewDisplayHardwareController(hw Hardware, store settings.Store, user int) *DisplayHardwareController {
	return &DisplayHardwareController{hw: hw, store: store, user: user}
}

func (c *DisplayHardwareController) Name() string {
	return featureDisplayHardware
}

// OnStart probes the hardware. Fails when neither flag is supported.
func (c *DisplayHardwareController) OnStart() bool {
	c.hasCABC = c.hw.Supported(hardware.AdaptiveBacklight)
	c.hasColorEnh = c.hw.Supported(hardware.ColorEnhancement)
	return c.hasCABC || c.hasColorEnh
}

func (c *DisplayHardwareController) Capabilities() CapabilitySet {
	var caps CapabilitySet
	if c.hasCABC {
		caps |= CapAdaptiveBacklight
	}
	if c.hasColorEnh {
		caps |= CapColorEnhancement
	}
	return caps
}

func (c *DisplayHardwareController) OnDisplayStateChanged(screenOn bool) {
	c.screenOn = screenOn
	c.apply()
}

func (c *DisplayHardwareController) OnLowPowerModeChanged(lowPower bool) {
	c.lowPower = lowPower
	c.apply()
}

func (c *DisplayHardwareController) OnTwilightUpdated(TwilightState) {}

func (c *DisplayHardwareController) OnModeChanged(m Mode) {
	c.mode = m
	c.apply()
}

// apply reconciles the hardware flags with the current session state.
// Postprocessing only runs while the screen is on and a mode is active.
func (c *DisplayHardwareController) apply() {
	if !c.screenOn {
		return
	}
	active := c.mode != ModeOff

	if c.hasCABC {
		want := active && c.store.GetInt(c.user, KeyCABC, 1) == 1
		c.setFlag(hardware.AdaptiveBacklight, want)
	}
	if c.hasColorEnh {
		// Color enhancement has a power cost; battery saver wins.
		want := active && !c.lowPower && c.store.GetInt(c.user, KeyColorEnhance, 1) == 1
		c.setFlag(hardware.ColorEnhancement, want)
	}
}

func (c *DisplayHardwareController) setFlag(f hardware.Flag, enable bool) {
	cur, err := c.hw.Get(f)
	if err != nil {
		log.Printf("[DISP] %s: %v", f, err)
		return
	}
	if cur == enable {
		return
	}
	if _, err := c.hw.Set(f, enable); err != nil {
		log.Printf("[DISP] %s: %v", f, err)
	}
}

func (c *DisplayHardwareController) Dump(w io.Writer) {
	fmt.Fprintf(w, "  %s: cabc=%v colorEnhance=%v screenOn=%v lowPower=%v mode=%s\n",
		featureDisplayHardware, c.hasCABC, c.hasColorEnh, c.screenOn, c.lowPower, c.mode)
}

// #endregion display-hardware
