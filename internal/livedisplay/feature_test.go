package livedisplay

import (
	"testing"

	"github.com/cmarkham/livedisplay/internal/hardware"
	"github.com/cmarkham/livedisplay/internal/settings"
)

// #region fake-hardware

type fakeHardware struct {
	supported uint32
	flags     map[hardware.Flag]bool
	calMax    int
	lastRGB   []int
}

func newFakeHardware(supported ...hardware.Flag) *fakeHardware {
	var mask uint32
	for _, f := range supported {
		mask |= uint32(f)
	}
	return &fakeHardware{supported: mask, flags: make(map[hardware.Flag]bool), calMax: 255}
}

func (h *fakeHardware) Supported(f hardware.Flag) bool {
	return uint32(f) == h.supported&uint32(f)
}

func (h *fakeHardware) Get(f hardware.Flag) (bool, error) {
	return h.flags[f], nil
}

func (h *fakeHardware) Set(f hardware.Flag, enable bool) (bool, error) {
	h.flags[f] = enable
	return true, nil
}

func (h *fakeHardware) DisplayColorCalibration() []int  { return h.lastRGB }
func (h *fakeHardware) DisplayColorCalibrationMin() int { return 0 }
func (h *fakeHardware) DisplayColorCalibrationMax() int { return h.calMax }

func (h *fakeHardware) SetDisplayColorCalibration(rgb []int) bool {
	h.lastRGB = rgb
	return true
}

// #endregion fake-hardware

// #region display-hardware-tests

func TestDisplayHardwareStartRequiresAFlag(t *testing.T) {
	bare := NewDisplayHardwareController(newFakeHardware(), settings.NewMemory(), 0)
	if bare.OnStart() {
		t.Fatal("no supported flags: start must fail")
	}

	ok := NewDisplayHardwareController(newFakeHardware(hardware.AdaptiveBacklight), settings.NewMemory(), 0)
	if !ok.OnStart() {
		t.Fatal("with CABC supported, start must succeed")
	}
	if !ok.Capabilities().Has(CapAdaptiveBacklight) {
		t.Fatal("capabilities should advertise CABC")
	}
}

func TestLowPowerDisablesColorEnhancement(t *testing.T) {
	hw := newFakeHardware(hardware.ColorEnhancement)
	c := NewDisplayHardwareController(hw, settings.NewMemory(), 0)
	if !c.OnStart() {
		t.Fatal("start failed")
	}

	c.OnDisplayStateChanged(true)
	c.OnModeChanged(ModeAuto)
	if !hw.flags[hardware.ColorEnhancement] {
		t.Fatal("color enhancement should be on in an active mode")
	}

	c.OnLowPowerModeChanged(true)
	if hw.flags[hardware.ColorEnhancement] {
		t.Fatal("battery saver must disable color enhancement")
	}

	c.OnLowPowerModeChanged(false)
	if !hw.flags[hardware.ColorEnhancement] {
		t.Fatal("leaving battery saver should restore it")
	}
}

func TestModeOffDisablesHardwareFlags(t *testing.T) {
	hw := newFakeHardware(hardware.AdaptiveBacklight, hardware.ColorEnhancement)
	c := NewDisplayHardwareController(hw, settings.NewMemory(), 0)
	c.OnStart()

	c.OnDisplayStateChanged(true)
	c.OnModeChanged(ModeDay)
	if !hw.flags[hardware.AdaptiveBacklight] {
		t.Fatal("CABC should be on")
	}

	c.OnModeChanged(ModeOff)
	if hw.flags[hardware.AdaptiveBacklight] || hw.flags[hardware.ColorEnhancement] {
		t.Fatal("mode off must disable owned flags")
	}
}

// #endregion display-hardware-tests

// #region color-temperature-tests

func TestColorTemperatureStartRequiresCalibration(t *testing.T) {
	c := NewColorTemperatureController(newFakeHardware(), settings.NewMemory(), 0)
	if c.OnStart() {
		t.Fatal("start must fail without the calibration control")
	}
}

func TestNightModeWarmsDisplay(t *testing.T) {
	hw := newFakeHardware(hardware.DisplayColorCalibration)
	c := NewColorTemperatureController(hw, settings.NewMemory(), 0)
	if !c.OnStart() {
		t.Fatal("start failed")
	}

	c.OnModeChanged(ModeNight)
	if c.ColorTemperature() != defaultNightTemperature {
		t.Fatalf("expected %dK, got %dK", defaultNightTemperature, c.ColorTemperature())
	}
	if hw.lastRGB == nil {
		t.Fatal("calibration should have been pushed")
	}
	if hw.lastRGB[2] >= hw.lastRGB[0] {
		t.Fatalf("night calibration should reduce blue relative to red, got %v", hw.lastRGB)
	}

	c.OnModeChanged(ModeOff)
	if c.ColorTemperature() != defaultDayTemperature {
		t.Fatalf("off resets to day temperature, got %dK", c.ColorTemperature())
	}
}

func TestAutoModeFollowsTwilight(t *testing.T) {
	hw := newFakeHardware(hardware.DisplayColorCalibration)
	c := NewColorTemperatureController(hw, settings.NewMemory(), 0)
	c.OnStart()
	c.OnModeChanged(ModeAuto)

	c.OnTwilightUpdated(TwilightState{IsNight: true})
	if c.ColorTemperature() != defaultNightTemperature {
		t.Fatalf("auto at night: expected %dK, got %dK", defaultNightTemperature, c.ColorTemperature())
	}

	c.OnTwilightUpdated(TwilightState{IsNight: false})
	if c.ColorTemperature() != defaultDayTemperature {
		t.Fatalf("auto at day: expected %dK, got %dK", defaultDayTemperature, c.ColorTemperature())
	}
}

func TestCustomTemperaturesComeFromSettings(t *testing.T) {
	store := settings.NewMemory()
	store.PutInt(0, KeyNightTemperature, 4000)
	hw := newFakeHardware(hardware.DisplayColorCalibration)
	c := NewColorTemperatureController(hw, store, 0)
	c.OnStart()

	c.OnModeChanged(ModeNight)
	if c.ColorTemperature() != 4000 {
		t.Fatalf("expected configured 4000K, got %dK", c.ColorTemperature())
	}
}

func TestTemperatureToRGBBounds(t *testing.T) {
	rgb := temperatureToRGB(defaultDayTemperature, 255)
	if rgb[0] != 255 || rgb[1] != 255 || rgb[2] != 255 {
		t.Fatalf("day temperature should be neutral, got %v", rgb)
	}
	rgb = temperatureToRGB(8000, 255)
	if rgb[0] != 255 || rgb[1] != 255 || rgb[2] != 255 {
		t.Fatalf("above-day temperatures clamp to neutral, got %v", rgb)
	}
}

// #endregion color-temperature-tests

// #region outdoor-tests

func TestOutdoorModeExplicitSelection(t *testing.T) {
	hw := newFakeHardware(hardware.SunlightEnhancement)
	c := NewOutdoorModeController(hw)
	if !c.OnStart() {
		t.Fatal("start failed")
	}

	c.OnModeChanged(ModeOutdoor)
	if !hw.flags[hardware.SunlightEnhancement] {
		t.Fatal("outdoor mode should enable sunlight enhancement")
	}

	c.OnModeChanged(ModeOff)
	if hw.flags[hardware.SunlightEnhancement] {
		t.Fatal("leaving outdoor mode should disable it")
	}
}

func TestOutdoorAutoDaytime(t *testing.T) {
	hw := newFakeHardware(hardware.SunlightEnhancement)
	c := NewOutdoorModeController(hw)
	c.OnStart()

	c.OnModeChanged(ModeAuto)
	c.OnTwilightUpdated(TwilightState{IsNight: false})
	if !hw.flags[hardware.SunlightEnhancement] {
		t.Fatal("auto mode in daytime should enable sunlight enhancement")
	}

	c.OnTwilightUpdated(TwilightState{IsNight: true})
	if hw.flags[hardware.SunlightEnhancement] {
		t.Fatal("nightfall should disable it")
	}
}

func TestSelfManagedPanelSkipsAuto(t *testing.T) {
	hw := newFakeHardware(hardware.SunlightEnhancement, hardware.AutoContrast)
	c := NewOutdoorModeController(hw)
	c.OnStart()

	if !c.Capabilities().Has(CapManagedOutdoorMode) {
		t.Fatal("self-managed panel should advertise managed outdoor mode")
	}

	c.OnModeChanged(ModeAuto)
	c.OnTwilightUpdated(TwilightState{IsNight: false})
	if hw.flags[hardware.SunlightEnhancement] {
		t.Fatal("self-managed panel must not be driven in auto mode")
	}
}

// #endregion outdoor-tests
