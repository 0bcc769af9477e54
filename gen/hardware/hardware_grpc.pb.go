// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             v5.29.3
// source: proto/hardware.proto

package hardware

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	HardwareService_GetSupportedFlags_FullMethodName          = "/hardware.HardwareService/GetSupportedFlags"
	HardwareService_GetFlag_FullMethodName                    = "/hardware.HardwareService/GetFlag"
	HardwareService_SetFlag_FullMethodName                    = "/hardware.HardwareService/SetFlag"
	HardwareService_GetVibratorIntensity_FullMethodName       = "/hardware.HardwareService/GetVibratorIntensity"
	HardwareService_SetVibratorIntensity_FullMethodName       = "/hardware.HardwareService/SetVibratorIntensity"
	HardwareService_GetDisplayColorCalibration_FullMethodName = "/hardware.HardwareService/GetDisplayColorCalibration"
	HardwareService_SetDisplayColorCalibration_FullMethodName = "/hardware.HardwareService/SetDisplayColorCalibration"
	HardwareService_GetDisplayGammaCalibration_FullMethodName = "/hardware.HardwareService/GetDisplayGammaCalibration"
	HardwareService_SetDisplayGammaCalibration_FullMethodName = "/hardware.HardwareService/SetDisplayGammaCalibration"
)

// HardwareServiceClient is the client API for HardwareService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// HardwareService exposes the device feature-flags broker: a supported
// bitmask, boolean enable/disable controls, and fixed-index tuple arrays
// for vibrator intensity and display color/gamma calibration.
//
// Regenerate bindings with:
//
//	protoc --go_out=. --go_opt=module=github.com/cmarkham/livedisplay \
//	       --go-grpc_out=. --go-grpc_opt=module=github.com/cmarkham/livedisplay \
//	       proto/hardware.proto
type HardwareServiceClient interface {
	GetSupportedFlags(ctx context.Context, in *GetSupportedFlagsRequest, opts ...grpc.CallOption) (*GetSupportedFlagsResponse, error)
	GetFlag(ctx context.Context, in *GetFlagRequest, opts ...grpc.CallOption) (*GetFlagResponse, error)
	SetFlag(ctx context.Context, in *SetFlagRequest, opts ...grpc.CallOption) (*SetFlagResponse, error)
	GetVibratorIntensity(ctx context.Context, in *GetVibratorIntensityRequest, opts ...grpc.CallOption) (*GetVibratorIntensityResponse, error)
	SetVibratorIntensity(ctx context.Context, in *SetVibratorIntensityRequest, opts ...grpc.CallOption) (*SetVibratorIntensityResponse, error)
	GetDisplayColorCalibration(ctx context.Context, in *GetDisplayColorCalibrationRequest, opts ...grpc.CallOption) (*GetDisplayColorCalibrationResponse, error)
	SetDisplayColorCalibration(ctx context.Context, in *SetDisplayColorCalibrationRequest, opts ...grpc.CallOption) (*SetDisplayColorCalibrationResponse, error)
	GetDisplayGammaCalibration(ctx context.Context, in *GetDisplayGammaCalibrationRequest, opts ...grpc.CallOption) (*GetDisplayGammaCalibrationResponse, error)
	SetDisplayGammaCalibration(ctx context.Context, in *SetDisplayGammaCalibrationRequest, opts ...grpc.CallOption) (*SetDisplayGammaCalibrationResponse, error)
}

type hardwareServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHardwareServiceClient(cc grpc.ClientConnInterface) HardwareServiceClient {
	return &hardwareServiceClient{cc}
}

func (c *hardwareServiceClient) GetSupportedFlags(ctx context.Context, in *GetSupportedFlagsRequest, opts ...grpc.CallOption) (*GetSupportedFlagsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSupportedFlagsResponse)
	err := c.cc.Invoke(ctx, HardwareService_GetSupportedFlags_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) GetFlag(ctx context.Context, in *GetFlagRequest, opts ...grpc.CallOption) (*GetFlagResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFlagResponse)
	err := c.cc.Invoke(ctx, HardwareService_GetFlag_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) SetFlag(ctx context.Context, in *SetFlagRequest, opts ...grpc.CallOption) (*SetFlagResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetFlagResponse)
	err := c.cc.Invoke(ctx, HardwareService_SetFlag_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) GetVibratorIntensity(ctx context.Context, in *GetVibratorIntensityRequest, opts ...grpc.CallOption) (*GetVibratorIntensityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVibratorIntensityResponse)
	err := c.cc.Invoke(ctx, HardwareService_GetVibratorIntensity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) SetVibratorIntensity(ctx context.Context, in *SetVibratorIntensityRequest, opts ...grpc.CallOption) (*SetVibratorIntensityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetVibratorIntensityResponse)
	err := c.cc.Invoke(ctx, HardwareService_SetVibratorIntensity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) GetDisplayColorCalibration(ctx context.Context, in *GetDisplayColorCalibrationRequest, opts ...grpc.CallOption) (*GetDisplayColorCalibrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDisplayColorCalibrationResponse)
	err := c.cc.Invoke(ctx, HardwareService_GetDisplayColorCalibration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) SetDisplayColorCalibration(ctx context.Context, in *SetDisplayColorCalibrationRequest, opts ...grpc.CallOption) (*SetDisplayColorCalibrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetDisplayColorCalibrationResponse)
	err := c.cc.Invoke(ctx, HardwareService_SetDisplayColorCalibration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) GetDisplayGammaCalibration(ctx context.Context, in *GetDisplayGammaCalibrationRequest, opts ...grpc.CallOption) (*GetDisplayGammaCalibrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDisplayGammaCalibrationResponse)
	err := c.cc.Invoke(ctx, HardwareService_GetDisplayGammaCalibration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hardwareServiceClient) SetDisplayGammaCalibration(ctx context.Context, in *SetDisplayGammaCalibrationRequest, opts ...grpc.CallOption) (*SetDisplayGammaCalibrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetDisplayGammaCalibrationResponse)
	err := c.cc.Invoke(ctx, HardwareService_SetDisplayGammaCalibration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HardwareServiceServer is the server API for HardwareService service.
// All implementations must embed UnimplementedHardwareServiceServer
// for forward compatibility.
//
// HardwareService exposes the device feature-flags broker: a supported
// bitmask, boolean enable/disable controls, and fixed-index tuple arrays
// for vibrator intensity and display color/gamma calibration.
//
// Regenerate bindings with:
//
//	protoc --go_out=. --go_opt=module=github.com/cmarkham/livedisplay \
//	       --go-grpc_out=. --go-grpc_opt=module=github.com/cmarkham/livedisplay \
//	       proto/hardware.proto
type HardwareServiceServer interface {
	GetSupportedFlags(context.Context, *GetSupportedFlagsRequest) (*GetSupportedFlagsResponse, error)
	GetFlag(context.Context, *GetFlagRequest) (*GetFlagResponse, error)
	SetFlag(context.Context, *SetFlagRequest) (*SetFlagResponse, error)
	GetVibratorIntensity(context.Context, *GetVibratorIntensityRequest) (*GetVibratorIntensityResponse, error)
	SetVibratorIntensity(context.Context, *SetVibratorIntensityRequest) (*SetVibratorIntensityResponse, error)
	GetDisplayColorCalibration(context.Context, *GetDisplayColorCalibrationRequest) (*GetDisplayColorCalibrationResponse, error)
	SetDisplayColorCalibration(context.Context, *SetDisplayColorCalibrationRequest) (*SetDisplayColorCalibrationResponse, error)
	GetDisplayGammaCalibration(context.Context, *GetDisplayGammaCalibrationRequest) (*GetDisplayGammaCalibrationResponse, error)
	SetDisplayGammaCalibration(context.Context, *SetDisplayGammaCalibrationRequest) (*SetDisplayGammaCalibrationResponse, error)
	mustEmbedUnimplementedHardwareServiceServer()
}

// UnimplementedHardwareServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedHardwareServiceServer struct{}

func (UnimplementedHardwareServiceServer) GetSupportedFlags(context.Context, *GetSupportedFlagsRequest) (*GetSupportedFlagsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSupportedFlags not implemented")
}
func (UnimplementedHardwareServiceServer) GetFlag(context.Context, *GetFlagRequest) (*GetFlagResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFlag not implemented")
}
func (UnimplementedHardwareServiceServer) SetFlag(context.Context, *SetFlagRequest) (*SetFlagResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFlag not implemented")
}
func (UnimplementedHardwareServiceServer) GetVibratorIntensity(context.Context, *GetVibratorIntensityRequest) (*GetVibratorIntensityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVibratorIntensity not implemented")
}
func (UnimplementedHardwareServiceServer) SetVibratorIntensity(context.Context, *SetVibratorIntensityRequest) (*SetVibratorIntensityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetVibratorIntensity not implemented")
}
func (UnimplementedHardwareServiceServer) GetDisplayColorCalibration(context.Context, *GetDisplayColorCalibrationRequest) (*GetDisplayColorCalibrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDisplayColorCalibration not implemented")
}
func (UnimplementedHardwareServiceServer) SetDisplayColorCalibration(context.Context, *SetDisplayColorCalibrationRequest) (*SetDisplayColorCalibrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetDisplayColorCalibration not implemented")
}
func (UnimplementedHardwareServiceServer) GetDisplayGammaCalibration(context.Context, *GetDisplayGammaCalibrationRequest) (*GetDisplayGammaCalibrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDisplayGammaCalibration not implemented")
}
func (UnimplementedHardwareServiceServer) SetDisplayGammaCalibration(context.Context, *SetDisplayGammaCalibrationRequest) (*SetDisplayGammaCalibrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetDisplayGammaCalibration not implemented")
}
func (UnimplementedHardwareServiceServer) mustEmbedUnimplementedHardwareServiceServer() {}
func (UnimplementedHardwareServiceServer) testEmbeddedByValue()                         {}

// UnsafeHardwareServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to HardwareServiceServer will
// result in compilation errors.
type UnsafeHardwareServiceServer interface {
	mustEmbedUnimplementedHardwareServiceServer()
}

func RegisterHardwareServiceServer(s grpc.ServiceRegistrar, srv HardwareServiceServer) {
	// If the following call pancis, it indicates UnimplementedHardwareServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&HardwareService_ServiceDesc, srv)
}

func _HardwareService_GetSupportedFlags_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSupportedFlagsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).GetSupportedFlags(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_GetSupportedFlags_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).GetSupportedFlags(ctx, req.(*GetSupportedFlagsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_GetFlag_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFlagRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).GetFlag(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_GetFlag_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).GetFlag(ctx, req.(*GetFlagRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_SetFlag_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFlagRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).SetFlag(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_SetFlag_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).SetFlag(ctx, req.(*SetFlagRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_GetVibratorIntensity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVibratorIntensityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).GetVibratorIntensity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_GetVibratorIntensity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).GetVibratorIntensity(ctx, req.(*GetVibratorIntensityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_SetVibratorIntensity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetVibratorIntensityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).SetVibratorIntensity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_SetVibratorIntensity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).SetVibratorIntensity(ctx, req.(*SetVibratorIntensityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_GetDisplayColorCalibration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDisplayColorCalibrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).GetDisplayColorCalibration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_GetDisplayColorCalibration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).GetDisplayColorCalibration(ctx, req.(*GetDisplayColorCalibrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_SetDisplayColorCalibration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDisplayColorCalibrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).SetDisplayColorCalibration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_SetDisplayColorCalibration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).SetDisplayColorCalibration(ctx, req.(*SetDisplayColorCalibrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_GetDisplayGammaCalibration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDisplayGammaCalibrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).GetDisplayGammaCalibration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_GetDisplayGammaCalibration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).GetDisplayGammaCalibration(ctx, req.(*GetDisplayGammaCalibrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HardwareService_SetDisplayGammaCalibration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDisplayGammaCalibrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HardwareServiceServer).SetDisplayGammaCalibration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HardwareService_SetDisplayGammaCalibration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HardwareServiceServer).SetDisplayGammaCalibration(ctx, req.(*SetDisplayGammaCalibrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HardwareService_ServiceDesc is the grpc.ServiceDesc for HardwareService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var HardwareService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hardware.HardwareService",
	HandlerType: (*HardwareServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSupportedFlags",
			Handler:    _HardwareService_GetSupportedFlags_Handler,
		},
		{
			MethodName: "GetFlag",
			Handler:    _HardwareService_GetFlag_Handler,
		},
		{
			MethodName: "SetFlag",
			Handler:    _HardwareService_SetFlag_Handler,
		},
		{
			MethodName: "GetVibratorIntensity",
			Handler:    _HardwareService_GetVibratorIntensity_Handler,
		},
		{
			MethodName: "SetVibratorIntensity",
			Handler:    _HardwareService_SetVibratorIntensity_Handler,
		},
		{
			MethodName: "GetDisplayColorCalibration",
			Handler:    _HardwareService_GetDisplayColorCalibration_Handler,
		},
		{
			MethodName: "SetDisplayColorCalibration",
			Handler:    _HardwareService_SetDisplayColorCalibration_Handler,
		},
		{
			MethodName: "GetDisplayGammaCalibration",
			Handler:    _HardwareService_GetDisplayGammaCalibration_Handler,
		},
		{
			MethodName: "SetDisplayGammaCalibration",
			Handler:    _HardwareService_SetDisplayGammaCalibration_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/hardware.proto",
}
