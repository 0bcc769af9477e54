package hardware

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/cmarkham/livedisplay/gen/hardware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion imports

// #region grpc-remote

// GRPCRemote implements Remote over the generated hardware service stubs.
type GRPCRemote struct {
	conn   *grpc.ClientConn
	client pb.HardwareServiceClient
}

// DialRemote connects to the hardware service.
func DialRemote(addr string) (*GRPCRemote, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &GRPCRemote{
		conn:   conn,
		client: pb.NewHardwareServiceClient(conn),
	}, nil
}

// NewGRPCRemoteWithService creates a GRPCRemote with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewGRPCRemoteWithService(svc pb.HardwareServiceClient) *GRPCRemote {
	return &GRPCRemote{client: svc}
}

// Close shuts down the gRPC connection.
func (r *GRPCRemote) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// #endregion grpc-remote

// #region flag-rpcs

func (r *GRPCRemote) SupportedFlags(ctx context.Context) (uint32, error) {
	resp, err := r.client.GetSupportedFlags(ctx, &pb.GetSupportedFlagsRequest{})
	if err != nil {
		return 0, fmt.Errorf("supported flags rpc: %w", err)
	}
	return resp.Flags, nil
}

func (r *GRPCRemote) Get(ctx context.Context, f Flag) (bool, error) {
	resp, err := r.client.GetFlag(ctx, &pb.GetFlagRequest{Flag: uint32(f)})
	if err != nil {
		return false, fmt.Errorf("get flag rpc: %w", err)
	}
	return resp.Value, nil
}

func (r *GRPCRemote) Set(ctx context.Context, f Flag, enable bool) (bool, error) {
	resp, err := r.client.SetFlag(ctx, &pb.SetFlagRequest{Flag: uint32(f), Enable: enable})
	if err != nil {
		return false, fmt.Errorf("set flag rpc: %w", err)
	}
	return resp.Ok, nil
}

// #endregion flag-rpcs

// #region tuple-rpcs

func (r *GRPCRemote) VibratorIntensity(ctx context.Context) ([]int32, error) {
	resp, err := r.client.GetVibratorIntensity(ctx, &pb.GetVibratorIntensityRequest{})
	if err != nil {
		return nil, fmt.Errorf("vibrator intensity rpc: %w", err)
	}
	return resp.Values, nil
}

func (r *GRPCRemote) SetVibratorIntensity(ctx context.Context, intensity int32) (bool, error) {
	resp, err := r.client.SetVibratorIntensity(ctx, &pb.SetVibratorIntensityRequest{Intensity: intensity})
	if err != nil {
		return false, fmt.Errorf("set vibrator intensity rpc: %w", err)
	}
	return resp.Ok, nil
}

func (r *GRPCRemote) DisplayColorCalibration(ctx context.Context) ([]int32, error) {
	resp, err := r.client.GetDisplayColorCalibration(ctx, &pb.GetDisplayColorCalibrationRequest{})
	if err != nil {
		return nil, fmt.Errorf("color calibration rpc: %w", err)
	}
	return resp.Values, nil
}

func (r *GRPCRemote) SetDisplayColorCalibration(ctx context.Context, rgb []int32) (bool, error) {
	resp, err := r.client.SetDisplayColorCalibration(ctx, &pb.SetDisplayColorCalibrationRequest{Rgb: rgb})
	if err != nil {
		return false, fmt.Errorf("set color calibration rpc: %w", err)
	}
	return resp.Ok, nil
}

func (r *GRPCRemote) DisplayGammaCalibration(ctx context.Context, idx int) ([]int32, error) {
	resp, err := r.client.GetDisplayGammaCalibration(ctx, &pb.GetDisplayGammaCalibrationRequest{Index: int32(idx)})
	if err != nil {
		return nil, fmt.Errorf("gamma calibration rpc: %w", err)
	}
	return resp.Values, nil
}

func (r *GRPCRemote) SetDisplayGammaCalibration(ctx context.Context, idx int, rgb []int32) (bool, error) {
	resp, err := r.client.SetDisplayGammaCalibration(ctx, &pb.SetDisplayGammaCalibrationRequest{Index: int32(idx), Rgb: rgb})
	if err != nil {
		return false, fmt.Errorf("set gamma calibration rpc: %w", err)
	}
	return resp.Ok, nil
}

// #endregion tuple-rpcs
