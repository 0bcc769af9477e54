// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        v5.29.3
// source: proto/hardware.proto

package hardware

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetSupportedFlagsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSupportedFlagsRequest) Reset() {
	*x = GetSupportedFlagsRequest{}
	mi := &file_proto_hardware_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSupportedFlagsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSupportedFlagsRequest) ProtoMessage() {}

func (x *GetSupportedFlagsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSupportedFlagsRequest.ProtoReflect.Descriptor instead.
func (*GetSupportedFlagsRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{0}
}

type GetSupportedFlagsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flags         uint32                 `protobuf:"varint,1,opt,name=flags,proto3" json:"flags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSupportedFlagsResponse) Reset() {
	*x = GetSupportedFlagsResponse{}
	mi := &file_proto_hardware_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSupportedFlagsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSupportedFlagsResponse) ProtoMessage() {}

func (x *GetSupportedFlagsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSupportedFlagsResponse.ProtoReflect.Descriptor instead.
func (*GetSupportedFlagsResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{1}
}

func (x *GetSupportedFlagsResponse) GetFlags() uint32 {
	if x != nil {
		return x.Flags
	}
	return 0
}

type GetFlagRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flag          uint32                 `protobuf:"varint,1,opt,name=flag,proto3" json:"flag,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFlagRequest) Reset() {
	*x = GetFlagRequest{}
	mi := &file_proto_hardware_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFlagRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFlagRequest) ProtoMessage() {}

func (x *GetFlagRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFlagRequest.ProtoReflect.Descriptor instead.
func (*GetFlagRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{2}
}

func (x *GetFlagRequest) GetFlag() uint32 {
	if x != nil {
		return x.Flag
	}
	return 0
}

type GetFlagResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         bool                   `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFlagResponse) Reset() {
	*x = GetFlagResponse{}
	mi := &file_proto_hardware_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFlagResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFlagResponse) ProtoMessage() {}

func (x *GetFlagResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFlagResponse.ProtoReflect.Descriptor instead.
func (*GetFlagResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{3}
}

func (x *GetFlagResponse) GetValue() bool {
	if x != nil {
		return x.Value
	}
	return false
}

type SetFlagRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flag          uint32                 `protobuf:"varint,1,opt,name=flag,proto3" json:"flag,omitempty"`
	Enable        bool                   `protobuf:"varint,2,opt,name=enable,proto3" json:"enable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFlagRequest) Reset() {
	*x = SetFlagRequest{}
	mi := &file_proto_hardware_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFlagRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFlagRequest) ProtoMessage() {}

func (x *SetFlagRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFlagRequest.ProtoReflect.Descriptor instead.
func (*SetFlagRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{4}
}

func (x *SetFlagRequest) GetFlag() uint32 {
	if x != nil {
		return x.Flag
	}
	return 0
}

func (x *SetFlagRequest) GetEnable() bool {
	if x != nil {
		return x.Enable
	}
	return false
}

type SetFlagResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFlagResponse) Reset() {
	*x = SetFlagResponse{}
	mi := &file_proto_hardware_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFlagResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFlagResponse) ProtoMessage() {}

func (x *SetFlagResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFlagResponse.ProtoReflect.Descriptor instead.
func (*SetFlagResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{5}
}

func (x *SetFlagResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type GetVibratorIntensityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVibratorIntensityRequest) Reset() {
	*x = GetVibratorIntensityRequest{}
	mi := &file_proto_hardware_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVibratorIntensityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVibratorIntensityRequest) ProtoMessage() {}

func (x *GetVibratorIntensityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVibratorIntensityRequest.ProtoReflect.Descriptor instead.
func (*GetVibratorIntensityRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{6}
}

// values layout: {intensity, default, min, max, warning}
type GetVibratorIntensityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []int32                `protobuf:"varint,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVibratorIntensityResponse) Reset() {
	*x = GetVibratorIntensityResponse{}
	mi := &file_proto_hardware_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVibratorIntensityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVibratorIntensityResponse) ProtoMessage() {}

func (x *GetVibratorIntensityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVibratorIntensityResponse.ProtoReflect.Descriptor instead.
func (*GetVibratorIntensityResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{7}
}

func (x *GetVibratorIntensityResponse) GetValues() []int32 {
	if x != nil {
		return x.Values
	}
	return nil
}

type SetVibratorIntensityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intensity     int32                  `protobuf:"varint,1,opt,name=intensity,proto3" json:"intensity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetVibratorIntensityRequest) Reset() {
	*x = SetVibratorIntensityRequest{}
	mi := &file_proto_hardware_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetVibratorIntensityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetVibratorIntensityRequest) ProtoMessage() {}

func (x *SetVibratorIntensityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetVibratorIntensityRequest.ProtoReflect.Descriptor instead.
func (*SetVibratorIntensityRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{8}
}

func (x *SetVibratorIntensityRequest) GetIntensity() int32 {
	if x != nil {
		return x.Intensity
	}
	return 0
}

type SetVibratorIntensityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetVibratorIntensityResponse) Reset() {
	*x = SetVibratorIntensityResponse{}
	mi := &file_proto_hardware_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetVibratorIntensityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetVibratorIntensityResponse) ProtoMessage() {}

func (x *SetVibratorIntensityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetVibratorIntensityResponse.ProtoReflect.Descriptor instead.
func (*SetVibratorIntensityResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{9}
}

func (x *SetVibratorIntensityResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type GetDisplayColorCalibrationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDisplayColorCalibrationRequest) Reset() {
	*x = GetDisplayColorCalibrationRequest{}
	mi := &file_proto_hardware_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDisplayColorCalibrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDisplayColorCalibrationRequest) ProtoMessage() {}

func (x *GetDisplayColorCalibrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDisplayColorCalibrationRequest.ProtoReflect.Descriptor instead.
func (*GetDisplayColorCalibrationRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{10}
}

// values layout: {r, g, b, default, min, max}
type GetDisplayColorCalibrationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []int32                `protobuf:"varint,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDisplayColorCalibrationResponse) Reset() {
	*x = GetDisplayColorCalibrationResponse{}
	mi := &file_proto_hardware_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDisplayColorCalibrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDisplayColorCalibrationResponse) ProtoMessage() {}

func (x *GetDisplayColorCalibrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDisplayColorCalibrationResponse.ProtoReflect.Descriptor instead.
func (*GetDisplayColorCalibrationResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{11}
}

func (x *GetDisplayColorCalibrationResponse) GetValues() []int32 {
	if x != nil {
		return x.Values
	}
	return nil
}

type SetDisplayColorCalibrationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rgb           []int32                `protobuf:"varint,1,rep,packed,name=rgb,proto3" json:"rgb,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDisplayColorCalibrationRequest) Reset() {
	*x = SetDisplayColorCalibrationRequest{}
	mi := &file_proto_hardware_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDisplayColorCalibrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDisplayColorCalibrationRequest) ProtoMessage() {}

func (x *SetDisplayColorCalibrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDisplayColorCalibrationRequest.ProtoReflect.Descriptor instead.
func (*SetDisplayColorCalibrationRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{12}
}

func (x *SetDisplayColorCalibrationRequest) GetRgb() []int32 {
	if x != nil {
		return x.Rgb
	}
	return nil
}

type SetDisplayColorCalibrationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDisplayColorCalibrationResponse) Reset() {
	*x = SetDisplayColorCalibrationResponse{}
	mi := &file_proto_hardware_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDisplayColorCalibrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDisplayColorCalibrationResponse) ProtoMessage() {}

func (x *SetDisplayColorCalibrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDisplayColorCalibrationResponse.ProtoReflect.Descriptor instead.
func (*SetDisplayColorCalibrationResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{13}
}

func (x *SetDisplayColorCalibrationResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type GetDisplayGammaCalibrationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDisplayGammaCalibrationRequest) Reset() {
	*x = GetDisplayGammaCalibrationRequest{}
	mi := &file_proto_hardware_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDisplayGammaCalibrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDisplayGammaCalibrationRequest) ProtoMessage() {}

func (x *GetDisplayGammaCalibrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDisplayGammaCalibrationRequest.ProtoReflect.Descriptor instead.
func (*GetDisplayGammaCalibrationRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{14}
}

func (x *GetDisplayGammaCalibrationRequest) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

// values layout: {r, g, b, min, max}
type GetDisplayGammaCalibrationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []int32                `protobuf:"varint,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDisplayGammaCalibrationResponse) Reset() {
	*x = GetDisplayGammaCalibrationResponse{}
	mi := &file_proto_hardware_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDisplayGammaCalibrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDisplayGammaCalibrationResponse) ProtoMessage() {}

func (x *GetDisplayGammaCalibrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDisplayGammaCalibrationResponse.ProtoReflect.Descriptor instead.
func (*GetDisplayGammaCalibrationResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{15}
}

func (x *GetDisplayGammaCalibrationResponse) GetValues() []int32 {
	if x != nil {
		return x.Values
	}
	return nil
}

type SetDisplayGammaCalibrationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Rgb           []int32                `protobuf:"varint,2,rep,packed,name=rgb,proto3" json:"rgb,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDisplayGammaCalibrationRequest) Reset() {
	*x = SetDisplayGammaCalibrationRequest{}
	mi := &file_proto_hardware_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDisplayGammaCalibrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDisplayGammaCalibrationRequest) ProtoMessage() {}

func (x *SetDisplayGammaCalibrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDisplayGammaCalibrationRequest.ProtoReflect.Descriptor instead.
func (*SetDisplayGammaCalibrationRequest) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{16}
}

func (x *SetDisplayGammaCalibrationRequest) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *SetDisplayGammaCalibrationRequest) GetRgb() []int32 {
	if x != nil {
		return x.Rgb
	}
	return nil
}

type SetDisplayGammaCalibrationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDisplayGammaCalibrationResponse) Reset() {
	*x = SetDisplayGammaCalibrationResponse{}
	mi := &file_proto_hardware_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDisplayGammaCalibrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDisplayGammaCalibrationResponse) ProtoMessage() {}

func (x *SetDisplayGammaCalibrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_hardware_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDisplayGammaCalibrationResponse.ProtoReflect.Descriptor instead.
func (*SetDisplayGammaCalibrationResponse) Descriptor() ([]byte, []int) {
	return file_proto_hardware_proto_rawDescGZIP(), []int{17}
}

func (x *SetDisplayGammaCalibrationResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

var File_proto_hardware_proto protoreflect.FileDescriptor

const file_proto_hardware_proto_rawDesc = "" +
	"\n" +
	"\x14proto/hardware.proto\x12\bhardware\"\x1a\n" +
	"\x18GetSupportedFlagsRequest\"1\n" +
	"\x19GetSupportedFlagsResponse\x12\x14\n" +
	"\x05flags\x18\x01 \x01(\rR\x05flags\"$\n" +
	"\x0eGetFlagRequest\x12\x12\n" +
	"\x04flag\x18\x01 \x01(\rR\x04flag\"'\n" +
	"\x0fGetFlagResponse\x12\x14\n" +
	"\x05value\x18\x01 \x01(\bR\x05value\"<\n" +
	"\x0eSetFlagRequest\x12\x12\n" +
	"\x04flag\x18\x01 \x01(\rR\x04flag\x12\x16\n" +
	"\x06enable\x18\x02 \x01(\bR\x06enable\"!\n" +
	"\x0fSetFlagResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"\x1d\n" +
	"\x1bGetVibratorIntensityRequest\"6\n" +
	"\x1cGetVibratorIntensityResponse\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x05R\x06values\";\n" +
	"\x1bSetVibratorIntensityRequest\x12\x1c\n" +
	"\tintensity\x18\x01 \x01(\x05R\tintensity\".\n" +
	"\x1cSetVibratorIntensityResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"#\n" +
	"!GetDisplayColorCalibrationRequest\"<\n" +
	"\"GetDisplayColorCalibrationResponse\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x05R\x06values\"5\n" +
	"!SetDisplayColorCalibrationRequest\x12\x10\n" +
	"\x03rgb\x18\x01 \x03(\x05R\x03rgb\"4\n" +
	"\"SetDisplayColorCalibrationResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\"9\n" +
	"!GetDisplayGammaCalibrationRequest\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\"<\n" +
	"\"GetDisplayGammaCalibrationResponse\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x05R\x06values\"K\n" +
	"!SetDisplayGammaCalibrationRequest\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x10\n" +
	"\x03rgb\x18\x02 \x03(\x05R\x03rgb\"4\n" +
	"\"SetDisplayGammaCalibrationResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok2\xa1\a\n" +
	"\x0fHardwareService\x12\\\n" +
	"\x11GetSupportedFlags\x12\".hardware.GetSupportedFlagsRequest\x1a#.hardware.GetSupportedFlagsResponse\x12>\n" +
	"\aGetFlag\x12\x18.hardware.GetFlagRequest\x1a\x19.hardware.GetFlagResponse\x12>\n" +
	"\aSetFlag\x12\x18.hardware.SetFlagRequest\x1a\x19.hardware.SetFlagResponse\x12e\n" +
	"\x14GetVibratorIntensity\x12%.hardware.GetVibratorIntensityRequest\x1a&.hardware.GetVibratorIntensityResponse\x12e\n" +
	"\x14SetVibratorIntensity\x12%.hardware.SetVibratorIntensityRequest\x1a&.hardware.SetVibratorIntensityResponse\x12w\n" +
	"\x1aGetDisplayColorCalibration\x12+.hardware.GetDisplayColorCalibrationRequest\x1a,.hardware.GetDisplayColorCalibrationResponse\x12w\n" +
	"\x1aSetDisplayColorCalibration\x12+.hardware.SetDisplayColorCalibrationRequest\x1a,.hardware.SetDisplayColorCalibrationResponse\x12w\n" +
	"\x1aGetDisplayGammaCalibration\x12+.hardware.GetDisplayGammaCalibrationRequest\x1a,.hardware.GetDisplayGammaCalibrationResponse\x12w\n" +
	"\x1aSetDisplayGammaCalibration\x12+.hardware.SetDisplayGammaCalibrationRequest\x1a,.hardware.SetDisplayGammaCalibrationResponseB7Z5github.com/cmarkham/livedisplay/gen/hardware;hardwareb\x06proto3"

var (
	file_proto_hardware_proto_rawDescOnce sync.Once
	file_proto_hardware_proto_rawDescData []byte
)

func file_proto_hardware_proto_rawDescGZIP() []byte {
	file_proto_hardware_proto_rawDescOnce.Do(func() {
		file_proto_hardware_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_hardware_proto_rawDesc), len(file_proto_hardware_proto_rawDesc)))
	})
	return file_proto_hardware_proto_rawDescData
}

var file_proto_hardware_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_proto_hardware_proto_goTypes = []any{
	(*GetSupportedFlagsRequest)(nil),           // 0: hardware.GetSupportedFlagsRequest
	(*GetSupportedFlagsResponse)(nil),          // 1: hardware.GetSupportedFlagsResponse
	(*GetFlagRequest)(nil),                     // 2: hardware.GetFlagRequest
	(*GetFlagResponse)(nil),                    // 3: hardware.GetFlagResponse
	(*SetFlagRequest)(nil),                     // 4: hardware.SetFlagRequest
	(*SetFlagResponse)(nil),                    // 5: hardware.SetFlagResponse
	(*GetVibratorIntensityRequest)(nil),        // 6: hardware.GetVibratorIntensityRequest
	(*GetVibratorIntensityResponse)(nil),       // 7: hardware.GetVibratorIntensityResponse
	(*SetVibratorIntensityRequest)(nil),        // 8: hardware.SetVibratorIntensityRequest
	(*SetVibratorIntensityResponse)(nil),       // 9: hardware.SetVibratorIntensityResponse
	(*GetDisplayColorCalibrationRequest)(nil),  // 10: hardware.GetDisplayColorCalibrationRequest
	(*GetDisplayColorCalibrationResponse)(nil), // 11: hardware.GetDisplayColorCalibrationResponse
	(*SetDisplayColorCalibrationRequest)(nil),  // 12: hardware.SetDisplayColorCalibrationRequest
	(*SetDisplayColorCalibrationResponse)(nil), // 13: hardware.SetDisplayColorCalibrationResponse
	(*GetDisplayGammaCalibrationRequest)(nil),  // 14: hardware.GetDisplayGammaCalibrationRequest
	(*GetDisplayGammaCalibrationResponse)(nil), // 15: hardware.GetDisplayGammaCalibrationResponse
	(*SetDisplayGammaCalibrationRequest)(nil),  // 16: hardware.SetDisplayGammaCalibrationRequest
	(*SetDisplayGammaCalibrationResponse)(nil), // 17: hardware.SetDisplayGammaCalibrationResponse
}
var file_proto_hardware_proto_depIdxs = []int32{
	0,  // 0: hardware.HardwareService.GetSupportedFlags:input_type -> hardware.GetSupportedFlagsRequest
	2,  // 1: hardware.HardwareService.GetFlag:input_type -> hardware.GetFlagRequest
	4,  // 2: hardware.HardwareService.SetFlag:input_type -> hardware.SetFlagRequest
	6,  // 3: hardware.HardwareService.GetVibratorIntensity:input_type -> hardware.GetVibratorIntensityRequest
	8,  // 4: hardware.HardwareService.SetVibratorIntensity:input_type -> hardware.SetVibratorIntensityRequest
	10, // 5: hardware.HardwareService.GetDisplayColorCalibration:input_type -> hardware.GetDisplayColorCalibrationRequest
	12, // 6: hardware.HardwareService.SetDisplayColorCalibration:input_type -> hardware.SetDisplayColorCalibrationRequest
	14, // 7: hardware.HardwareService.GetDisplayGammaCalibration:input_type -> hardware.GetDisplayGammaCalibrationRequest
	16, // 8: hardware.HardwareService.SetDisplayGammaCalibration:input_type -> hardware.SetDisplayGammaCalibrationRequest
	1,  // 9: hardware.HardwareService.GetSupportedFlags:output_type -> hardware.GetSupportedFlagsResponse
	3,  // 10: hardware.HardwareService.GetFlag:output_type -> hardware.GetFlagResponse
	5,  // 11: hardware.HardwareService.SetFlag:output_type -> hardware.SetFlagResponse
	7,  // 12: hardware.HardwareService.GetVibratorIntensity:output_type -> hardware.GetVibratorIntensityResponse
	9,  // 13: hardware.HardwareService.SetVibratorIntensity:output_type -> hardware.SetVibratorIntensityResponse
	11, // 14: hardware.HardwareService.GetDisplayColorCalibration:output_type -> hardware.GetDisplayColorCalibrationResponse
	13, // 15: hardware.HardwareService.SetDisplayColorCalibration:output_type -> hardware.SetDisplayColorCalibrationResponse
	15, // 16: hardware.HardwareService.GetDisplayGammaCalibration:output_type -> hardware.GetDisplayGammaCalibrationResponse
	17, // 17: hardware.HardwareService.SetDisplayGammaCalibration:output_type -> hardware.SetDisplayGammaCalibrationResponse
	9,  // [9:18] is the sub-list for method output_type
	0,  // [0:9] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_proto_hardware_proto_init() }
func file_proto_hardware_proto_init() {
	if File_proto_hardware_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_hardware_proto_rawDesc), len(file_proto_hardware_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_hardware_proto_goTypes,
		DependencyIndexes: file_proto_hardware_proto_depIdxs,
		MessageInfos:      file_proto_hardware_proto_msgTypes,
	}.Build()
	File_proto_hardware_proto = out.File
	file_proto_hardware_proto_goTypes = nil
	file_proto_hardware_proto_depIdxs = nil
}
