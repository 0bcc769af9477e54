package hardware

import "context"

// #region remote-interface

// Remote is the wire surface of the hardware feature-flags service. The
// gRPC implementation lives in grpc.go; tests inject fakes.
type Remote interface {
	SupportedFlags(ctx context.Context) (uint32, error)
	Get(ctx context.Context, f Flag) (bool, error)
	Set(ctx context.Context, f Flag, enable bool) (bool, error)

	VibratorIntensity(ctx context.Context) ([]int32, error)
	SetVibratorIntensity(ctx context.Context, intensity int32) (bool, error)

	DisplayColorCalibration(ctx context.Context) ([]int32, error)
	SetDisplayColorCalibration(ctx context.Context, rgb []int32) (bool, error)

	DisplayGammaCalibration(ctx context.Context, idx int) ([]int32, error)
	SetDisplayGammaCalibration(ctx context.Context, idx int, rgb []int32) (bool, error)
}

// #endregion remote-interface

// #region disconnected

// disconnected serves safe defaults while no remote is attached: zero
// bitmask, false booleans, nil arrays. Callers cannot tell a missing
// service from a featureless one, which is the intended failure mode.
type disconnected struct{}

func (disconnected) SupportedFlags(context.Context) (uint32, error) { return 0, nil }
func (disconnected) Get(context.Context, Flag) (bool, error)        { return false, nil }
func (disconnected) Set(context.Context, Flag, bool) (bool, error)  { return false, nil }

func (disconnected) VibratorIntensity(context.Context) ([]int32, error) { return nil, nil }
func (disconnected) SetVibratorIntensity(context.Context, int32) (bool, error) {
	return false, nil
}

func (disconnected) DisplayColorCalibration(context.Context) ([]int32, error) { return nil, nil }
func (disconnected) SetDisplayColorCalibration(context.Context, []int32) (bool, error) {
	return false, nil
}

func (disconnected) DisplayGammaCalibration(context.Context, int) ([]int32, error) {
	return nil, nil
}
func (disconnected) SetDisplayGammaCalibration(context.Context, int, []int32) (bool, error) {
	return false, nil
}

// #endregion disconnected
