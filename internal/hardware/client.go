package hardware

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// #endregion imports

// #region client

// Client is the broker handle the rest of the system talks to. It has two
// states: Disconnected, where every call serves a safe default, and
// Connected(remote), switched atomically at most once. Remote failures are
// absorbed at this boundary and converted to the same safe defaults;
// callers never see a transport error. The only errors surfaced are
// rejected preconditions (a non-boolean flag passed to Get or Set).
type Client struct {
	remote    atomic.Value // remoteHolder
	connectMu sync.Mutex
	connected bool
	timeout   time.Duration
}

// remoteHolder keeps atomic.Value happy: the stored concrete type must
// never change, but the remote swaps from disconnected to the real one.
type remoteHolder struct {
	r Remote
}

const defaultCallTimeout = 2 * time.Second

// NewClient returns a disconnected client.
func NewClient() *Client {
	c := &Client{timeout: defaultCallTimeout}
	c.remote.Store(remoteHolder{r: disconnected{}})
	return c
}

// Connect attaches the real remote. Returns false if a remote was already
// attached; the first connection wins for the process lifetime.
func (c *Client) Connect(r Remote) bool {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()
	if c.connected {
		return false
	}
	c.remote.Store(remoteHolder{r: r})
	c.connected = true
	return true
}

// Connected reports whether a remote has been attached.
func (c *Client) Connected() bool {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()
	return c.connected
}

func (c *Client) current() Remote {
	return c.remote.Load().(remoteHolder).r
}

func (c *Client) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

// #endregion client

// #region flag-queries

// SupportedFlags returns the supported-features bitmask, or 0 on failure.
func (c *Client) SupportedFlags() uint32 {
	ctx, cancel := c.callCtx()
	defer cancel()
	mask, err := c.current().SupportedFlags(ctx)
	if err != nil {
		log.Printf("[HW] supported flags: %v", err)
		return 0
	}
	return mask
}

// Supported reports whether the device supports the given flag.
func (c *Client) Supported(f Flag) bool {
	return uint32(f) == c.SupportedFlags()&uint32(f)
}

// Get returns whether a boolean feature is enabled. The error is a
// rejected precondition only; transport failures read as false.
func (c *Client) Get(f Flag) (bool, error) {
	if !f.Boolean() {
		return false, fmt.Errorf("flag %s is not a boolean control", f)
	}
	ctx, cancel := c.callCtx()
	defer cancel()
	v, err := c.current().Get(ctx, f)
	if err != nil {
		log.Printf("[HW] get %s: %v", f, err)
		return false, nil
	}
	return v, nil
}

// Set enables or disables a boolean feature. Reports whether the hardware
// accepted the change; transport failures read as false.
func (c *Client) Set(f Flag, enable bool) (bool, error) {
	if !f.Boolean() {
		return false, fmt.Errorf("flag %s is not a boolean control", f)
	}
	ctx, cancel := c.callCtx()
	defer cancel()
	ok, err := c.current().Set(ctx, f, enable)
	if err != nil {
		log.Printf("[HW] set %s=%v: %v", f, enable, err)
		return false, nil
	}
	return ok, nil
}

// #endregion flag-queries

// #region tuple-helpers

// arrayValue indexes a fixed-layout tuple array. Missing or short arrays
// fall back to the documented default of 0.
func arrayValue(arr []int32, idx int) int {
	if len(arr) <= idx {
		return 0
	}
	return int(arr[idx])
}

// #endregion tuple-helpers

// #region vibrator

func (c *Client) vibratorArray() []int32 {
	ctx, cancel := c.callCtx()
	defer cancel()
	arr, err := c.current().VibratorIntensity(ctx)
	if err != nil {
		log.Printf("[HW] vibrator intensity: %v", err)
		return nil
	}
	return arr
}

// VibratorIntensity returns the current vibrator intensity.
func (c *Client) VibratorIntensity() int {
	return arrayValue(c.vibratorArray(), VibratorIntensityIndex)
}

// VibratorDefaultIntensity returns the default vibrator intensity.
func (c *Client) VibratorDefaultIntensity() int {
	return arrayValue(c.vibratorArray(), VibratorDefaultIndex)
}

// VibratorMinIntensity returns the minimum vibrator intensity.
func (c *Client) VibratorMinIntensity() int {
	return arrayValue(c.vibratorArray(), VibratorMinIndex)
}

// VibratorMaxIntensity returns the maximum vibrator intensity.
func (c *Client) VibratorMaxIntensity() int {
	return arrayValue(c.vibratorArray(), VibratorMaxIndex)
}

// VibratorWarningIntensity returns the intensity above which the hardware
// warns of excessive wear.
func (c *Client) VibratorWarningIntensity() int {
	return arrayValue(c.vibratorArray(), VibratorWarningIndex)
}

// SetVibratorIntensity updates the vibrator intensity.
func (c *Client) SetVibratorIntensity(intensity int) bool {
	ctx, cancel := c.callCtx()
	defer cancel()
	ok, err := c.current().SetVibratorIntensity(ctx, int32(intensity))
	if err != nil {
		log.Printf("[HW] set vibrator intensity: %v", err)
		return false
	}
	return ok
}

// #endregion vibrator

// #region color-calibration

func (c *Client) colorCalibrationArray() []int32 {
	ctx, cancel := c.callCtx()
	defer cancel()
	arr, err := c.current().DisplayColorCalibration(ctx)
	if err != nil {
		log.Printf("[HW] color calibration: %v", err)
		return nil
	}
	return arr
}

// DisplayColorCalibration returns the current {r, g, b} calibration.
func (c *Client) DisplayColorCalibration() []int {
	arr := c.colorCalibrationArray()
	return []int{
		arrayValue(arr, ColorCalibrationRedIndex),
		arrayValue(arr, ColorCalibrationGreenIndex),
		arrayValue(arr, ColorCalibrationBlueIndex),
	}
}

// DisplayColorCalibrationDefault returns the default calibration value.
func (c *Client) DisplayColorCalibrationDefault() int {
	return arrayValue(c.colorCalibrationArray(), ColorCalibrationDefaultIndex)
}

// DisplayColorCalibrationMin returns the minimum calibration value.
func (c *Client) DisplayColorCalibrationMin() int {
	return arrayValue(c.colorCalibrationArray(), ColorCalibrationMinIndex)
}

// DisplayColorCalibrationMax returns the maximum calibration value.
func (c *Client) DisplayColorCalibrationMax() int {
	return arrayValue(c.colorCalibrationArray(), ColorCalibrationMaxIndex)
}

// SetDisplayColorCalibration pushes an {r, g, b} calibration. Values must
// be within the min/max reported by the hardware.
func (c *Client) SetDisplayColorCalibration(rgb []int) bool {
	if len(rgb) != 3 {
		return false
	}
	ctx, cancel := c.callCtx()
	defer cancel()
	wire := []int32{int32(rgb[0]), int32(rgb[1]), int32(rgb[2])}
	ok, err := c.current().SetDisplayColorCalibration(ctx, wire)
	if err != nil {
		log.Printf("[HW] set color calibration: %v", err)
		return false
	}
	return ok
}

// #endregion color-calibration

// #region gamma-calibration

func (c *Client) gammaCalibrationArray(idx int) []int32 {
	ctx, cancel := c.callCtx()
	defer cancel()
	arr, err := c.current().DisplayGammaCalibration(ctx, idx)
	if err != nil {
		log.Printf("[HW] gamma calibration %d: %v", idx, err)
		return nil
	}
	return arr
}

// DisplayGammaCalibration returns the {r, g, b} gamma curve at idx.
func (c *Client) DisplayGammaCalibration(idx int) []int {
	arr := c.gammaCalibrationArray(idx)
	return []int{
		arrayValue(arr, GammaCalibrationRedIndex),
		arrayValue(arr, GammaCalibrationGreenIndex),
		arrayValue(arr, GammaCalibrationBlueIndex),
	}
}

// DisplayGammaCalibrationMin returns the minimum gamma value.
func (c *Client) DisplayGammaCalibrationMin() int {
	return arrayValue(c.gammaCalibrationArray(0), GammaCalibrationMinIndex)
}

// DisplayGammaCalibrationMax returns the maximum gamma value.
func (c *Client) DisplayGammaCalibrationMax() int {
	return arrayValue(c.gammaCalibrationArray(0), GammaCalibrationMaxIndex)
}

// SetDisplayGammaCalibration pushes an {r, g, b} gamma curve at idx.
func (c *Client) SetDisplayGammaCalibration(idx int, rgb []int) bool {
	if len(rgb) != 3 {
		return false
	}
	ctx, cancel := c.callCtx()
	defer cancel()
	wire := []int32{int32(rgb[0]), int32(rgb[1]), int32(rgb[2])}
	ok, err := c.current().SetDisplayGammaCalibration(ctx, idx, wire)
	if err != nil {
		log.Printf("[HW] set gamma calibration %d: %v", idx, err)
		return false
	}
	return ok
}

// #endregion gamma-calibration
