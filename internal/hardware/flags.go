package hardware

// #region flags

// Flag identifies one hardware feature control, as a bit in the supported
// bitmask reported by the remote service.
type Flag uint32

const (
	AdaptiveBacklight       Flag = 0x1
	ColorEnhancement        Flag = 0x2
	DisplayColorCalibration Flag = 0x4
	DisplayGammaCalibration Flag = 0x8
	HighTouchSensitivity    Flag = 0x10
	KeyDisable              Flag = 0x20
	LongTermOrbits          Flag = 0x40
	SerialNumber            Flag = 0x80
	SunlightEnhancement     Flag = 0x100
	TapToWake               Flag = 0x200
	Vibrator                Flag = 0x400
	TouchHovering           Flag = 0x800
	AutoContrast            Flag = 0x1000
	DisplayModes            Flag = 0x2000
)

// booleanFlags is the subset with simple enable/disable controls. Get and
// Set reject anything outside it.
var booleanFlags = map[Flag]bool{
	AdaptiveBacklight:    true,
	ColorEnhancement:     true,
	HighTouchSensitivity: true,
	KeyDisable:           true,
	SunlightEnhancement:  true,
	TapToWake:            true,
	TouchHovering:        true,
	AutoContrast:         true,
	DisplayModes:         true,
}

// Boolean reports whether f has a simple enable/disable control.
func (f Flag) Boolean() bool {
	return booleanFlags[f]
}

func (f Flag) String() string {
	switch f {
	case AdaptiveBacklight:
		return "adaptive_backlight"
	case ColorEnhancement:
		return "color_enhancement"
	case DisplayColorCalibration:
		return "display_color_calibration"
	case DisplayGammaCalibration:
		return "display_gamma_calibration"
	case HighTouchSensitivity:
		return "high_touch_sensitivity"
	case KeyDisable:
		return "key_disable"
	case LongTermOrbits:
		return "long_term_orbits"
	case SerialNumber:
		return "serial_number"
	case SunlightEnhancement:
		return "sunlight_enhancement"
	case TapToWake:
		return "tap_to_wake"
	case Vibrator:
		return "vibrator"
	case TouchHovering:
		return "touch_hovering"
	case AutoContrast:
		return "auto_contrast"
	case DisplayModes:
		return "display_modes"
	default:
		return "unknown"
	}
}

// #endregion flags

// #region tuple-indices

// Fixed indices into the vibrator intensity array.
const (
	VibratorIntensityIndex = 0
	VibratorDefaultIndex   = 1
	VibratorMinIndex       = 2
	VibratorMaxIndex       = 3
	VibratorWarningIndex   = 4
)

// Fixed indices into the display color calibration array.
const (
	ColorCalibrationRedIndex     = 0
	ColorCalibrationGreenIndex   = 1
	ColorCalibrationBlueIndex    = 2
	ColorCalibrationDefaultIndex = 3
	ColorCalibrationMinIndex     = 4
	ColorCalibrationMaxIndex     = 5
)

// Fixed indices into a display gamma calibration array.
const (
	GammaCalibrationRedIndex   = 0
	GammaCalibrationGreenIndex = 1
	GammaCalibrationBlueIndex  = 2
	GammaCalibrationMinIndex   = 3
	GammaCalibrationMaxIndex   = 4
)

// #endregion tuple-indices
