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

const featureColorTemperature = "color_temperature"

// Default correlated color temperatures in kelvin.
const (
	defaultDayTemperature   = 6500
	defaultNightTemperature = 4800
)

// #region color-temperature

// ColorTemperatureController shifts the display toward warmer colors at
// night by pushing an RGB calibration derived from the target temperature.
// The target follows mode and twilight: night temperature in night mode or
// auto-at-night, day temperature otherwise.
type ColorTemperatureController struct {
	hw    Hardware
	store settings.Store
	user  int

	screenOn bool
	isNight  bool
	mode     Mode
	current  int
}

// NewColorTemperatureController returns an unstarted controller.
func NewColorTemperatureController(hw Hardware, store settings.Store, user int) *ColorTemperatureController {
	return &ColorTemperatureController{hw: hw, store: store, user: user}
}

func (c *ColorTemperatureController) Name() string {
	return featureColorTemperature
}

// OnStart requires the color calibration control.
func (c *ColorTemperatureController) OnStart() bool {
	if !c.hw.Supported(hardware.DisplayColorCalibration) {
		return false
	}
	c.current = c.dayTemperature()
	return true
}

func (c *ColorTemperatureController) Capabilities() CapabilitySet {
	return CapModeOff | CapModeNight | CapModeAuto | CapModeDay | CapColorAdjustment
}

func (c *ColorTemperatureController) OnDisplayStateChanged(screenOn bool) {
	c.screenOn = screenOn
	if screenOn {
		c.update()
	}
}

func (c *ColorTemperatureController) OnLowPowerModeChanged(bool) {}

func (c *ColorTemperatureController) OnTwilightUpdated(t TwilightState) {
	c.isNight = t.IsNight
	c.update()
}

func (c *ColorTemperatureController) OnModeChanged(m Mode) {
	c.mode = m
	c.update()
}

// DefaultDayTemperature returns the built-in day temperature.
func (c *ColorTemperatureController) DefaultDayTemperature() int {
	return defaultDayTemperature
}

// DefaultNightTemperature returns the built-in night temperature.
func (c *ColorTemperatureController) DefaultNightTemperature() int {
	return defaultNightTemperature
}

// ColorTemperature returns the temperature currently applied. Callers
// outside the dispatcher must go through Service.ColorTemperature, which
// holds the dispatcher lock; the controller itself is not synchronized.
func (c *ColorTemperatureController) ColorTemperature() int {
	return c.current
}

func (c *ColorTemperatureController) dayTemperature() int {
	return c.store.GetInt(c.user, KeyDayTemperature, defaultDayTemperature)
}

func (c *ColorTemperatureController) nightTemperature() int {
	return c.store.GetInt(c.user, KeyNightTemperature, defaultNightTemperature)
}

func (c *ColorTemperatureController) targetTemperature() int {
	switch c.mode {
	case ModeNight:
		return c.nightTemperature()
	case ModeAuto:
		if c.isNight {
			return c.nightTemperature()
		}
		return c.dayTemperature()
	default:
		// Off, Day, and Outdoor all run at the day temperature.
		return c.dayTemperature()
	}
}

func (c *ColorTemperatureController) update() {
	target := c.targetTemperature()
	if target == c.current {
		return
	}
	c.current = target
	rgb := temperatureToRGB(target, c.hw.DisplayColorCalibrationMax())
	if !c.hw.SetDisplayColorCalibration(rgb) {
		log.Printf("[DISP] color calibration for %dK rejected", target)
	}
}

// temperatureToRGB maps a color temperature to an RGB calibration triple.
// Red stays at max; green and blue scale down linearly as the temperature
// drops from the day default toward the warm end.
func temperatureToRGB(temp, max int) []int {
	if max <= 0 {
		max = 255
	}
	if temp >= defaultDayTemperature {
		return []int{max, max, max}
	}
	ratio := float64(temp) / float64(defaultDayTemperature)
	green := int(float64(max) * (0.8 + 0.2*ratio))
	blue := int(float64(max) * ratio)
	return []int{max, green, blue}
}

func (c *ColorTemperatureController) Dump(w io.Writer) {
	fmt.Fprintf(w, "  %s: current=%dK day=%dK night=%dK isNight=%v mode=%s\n",
		featureColorTemperature, c.current, c.dayTemperature(), c.nightTemperature(), c.isNight, c.mode)
}

// #endregion color-temperature
