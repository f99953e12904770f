// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.32.0
// 	protoc        (unknown)
// source: internal/api/proto/permit/permit.proto

package permitpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Permit struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id            string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AssociationId string `protobuf:"bytes,2,opt,name=association_id,json=associationId,proto3" json:"association_id,omitempty"`
	UnitId        string `protobuf:"bytes,3,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	VehicleId     string `protobuf:"bytes,4,opt,name=vehicle_id,json=vehicleId,proto3" json:"vehicle_id,omitempty"`
	Type          string `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"` // resident / visitor / temporary / additional
	PermitNumber  string `protobuf:"bytes,6,opt,name=permit_number,json=permitNumber,proto3" json:"permit_number,omitempty"`
	Status        string `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`                                    // 持久化状态
	DisplayStatus string `protobuf:"bytes,8,opt,name=display_status,json=displayStatus,proto3" json:"display_status,omitempty"` // 叠加到期时间后的展示状态
	IssuedAt      int64  `protobuf:"varint,9,opt,name=issued_at,json=issuedAt,proto3" json:"issued_at,omitempty"`               // unix 秒
	ExpiresAt     int64  `protobuf:"varint,10,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`           // 0 = 长期有效
	RevokedAt     int64  `protobuf:"varint,11,opt,name=revoked_at,json=revokedAt,proto3" json:"revoked_at,omitempty"`
	RevokedReason string `protobuf:"bytes,12,opt,name=revoked_reason,json=revokedReason,proto3" json:"revoked_reason,omitempty"`
	Notes         string `protobuf:"bytes,13,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedBy     string `protobuf:"bytes,14,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt     int64  `protobuf:"varint,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     int64  `protobuf:"varint,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *Permit) Reset() {
	*x = Permit{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Permit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Permit) ProtoMessage() {}

func (x *Permit) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Permit.ProtoReflect.Descriptor instead.
func (*Permit) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{0}
}

func (x *Permit) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Permit) GetAssociationId() string {
	if x != nil {
		return x.AssociationId
	}
	return ""
}

func (x *Permit) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *Permit) GetVehicleId() string {
	if x != nil {
		return x.VehicleId
	}
	return ""
}

func (x *Permit) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Permit) GetPermitNumber() string {
	if x != nil {
		return x.PermitNumber
	}
	return ""
}

func (x *Permit) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Permit) GetDisplayStatus() string {
	if x != nil {
		return x.DisplayStatus
	}
	return ""
}

func (x *Permit) GetIssuedAt() int64 {
	if x != nil {
		return x.IssuedAt
	}
	return 0
}

func (x *Permit) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *Permit) GetRevokedAt() int64 {
	if x != nil {
		return x.RevokedAt
	}
	return 0
}

func (x *Permit) GetRevokedReason() string {
	if x != nil {
		return x.RevokedReason
	}
	return ""
}

func (x *Permit) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Permit) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *Permit) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *Permit) GetUpdatedAt() int64 {
	if x != nil {
		return x.UpdatedAt
	}
	return 0
}

type Caps struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MaxResident      int32 `protobuf:"varint,1,opt,name=max_resident,json=maxResident,proto3" json:"max_resident,omitempty"` // -1 = 不限
	MaxVisitor       int32 `protobuf:"varint,2,opt,name=max_visitor,json=maxVisitor,proto3" json:"max_visitor,omitempty"`    // -1 = 不限
	BaselineResident int32 `protobuf:"varint,3,opt,name=baseline_resident,json=baselineResident,proto3" json:"baseline_resident,omitempty"`
}

func (x *Caps) Reset() {
	*x = Caps{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Caps) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Caps) ProtoMessage() {}

func (x *Caps) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Caps.ProtoReflect.Descriptor instead.
func (*Caps) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{1}
}

func (x *Caps) GetMaxResident() int32 {
	if x != nil {
		return x.MaxResident
	}
	return 0
}

func (x *Caps) GetMaxVisitor() int32 {
	if x != nil {
		return x.MaxVisitor
	}
	return 0
}

func (x *Caps) GetBaselineResident() int32 {
	if x != nil {
		return x.BaselineResident
	}
	return 0
}

type Counts struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Resident int32 `protobuf:"varint,1,opt,name=resident,proto3" json:"resident,omitempty"`
	Visitor  int32 `protobuf:"varint,2,opt,name=visitor,proto3" json:"visitor,omitempty"`
}

func (x *Counts) Reset() {
	*x = Counts{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Counts) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Counts) ProtoMessage() {}

func (x *Counts) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Counts.ProtoReflect.Descriptor instead.
func (*Counts) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{2}
}

func (x *Counts) GetResident() int32 {
	if x != nil {
		return x.Resident
	}
	return 0
}

func (x *Counts) GetVisitor() int32 {
	if x != nil {
		return x.Visitor
	}
	return 0
}

type AvailabilityFlags struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	CanIssueResident bool `protobuf:"varint,1,opt,name=can_issue_resident,json=canIssueResident,proto3" json:"can_issue_resident,omitempty"`
	CanIssueVisitor  bool `protobuf:"varint,2,opt,name=can_issue_visitor,json=canIssueVisitor,proto3" json:"can_issue_visitor,omitempty"`
}

func (x *AvailabilityFlags) Reset() {
	*x = AvailabilityFlags{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AvailabilityFlags) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AvailabilityFlags) ProtoMessage() {}

func (x *AvailabilityFlags) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AvailabilityFlags.ProtoReflect.Descriptor instead.
func (*AvailabilityFlags) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{3}
}

func (x *AvailabilityFlags) GetCanIssueResident() bool {
	if x != nil {
		return x.CanIssueResident
	}
	return false
}

func (x *AvailabilityFlags) GetCanIssueVisitor() bool {
	if x != nil {
		return x.CanIssueVisitor
	}
	return false
}

type CapacityDetails struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Active     int32  `protobuf:"varint,1,opt,name=active,proto3" json:"active,omitempty"`
	Max        int32  `protobuf:"varint,2,opt,name=max,proto3" json:"max,omitempty"`
	PermitType string `protobuf:"bytes,3,opt,name=permit_type,json=permitType,proto3" json:"permit_type,omitempty"` // resident / visitor
}

func (x *CapacityDetails) Reset() {
	*x = CapacityDetails{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CapacityDetails) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CapacityDetails) ProtoMessage() {}

func (x *CapacityDetails) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CapacityDetails.ProtoReflect.Descriptor instead.
func (*CapacityDetails) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{4}
}

func (x *CapacityDetails) GetActive() int32 {
	if x != nil {
		return x.Active
	}
	return 0
}

func (x *CapacityDetails) GetMax() int32 {
	if x != nil {
		return x.Max
	}
	return 0
}

func (x *CapacityDetails) GetPermitType() string {
	if x != nil {
		return x.PermitType
	}
	return ""
}

type IssuePermitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UnitId         string `protobuf:"bytes,1,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	Type           string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	PermitNumber   string `protobuf:"bytes,3,opt,name=permit_number,json=permitNumber,proto3" json:"permit_number,omitempty"`
	VehicleId      string `protobuf:"bytes,4,opt,name=vehicle_id,json=vehicleId,proto3" json:"vehicle_id,omitempty"`
	IssuedAt       int64  `protobuf:"varint,5,opt,name=issued_at,json=issuedAt,proto3" json:"issued_at,omitempty"`    // 0 = 当前时间
	ExpiresAt      int64  `protobuf:"varint,6,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"` // 0 = 长期有效
	Notes          string `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	OverrideLimits bool   `protobuf:"varint,8,opt,name=override_limits,json=overrideLimits,proto3" json:"override_limits,omitempty"`
	OverrideToken  string `protobuf:"bytes,9,opt,name=override_token,json=overrideToken,proto3" json:"override_token,omitempty"` // 引擎内部验签的能力令牌
	CreatedBy      string `protobuf:"bytes,10,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
}

func (x *IssuePermitRequest) Reset() {
	*x = IssuePermitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IssuePermitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssuePermitRequest) ProtoMessage() {}

func (x *IssuePermitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssuePermitRequest.ProtoReflect.Descriptor instead.
func (*IssuePermitRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{5}
}

func (x *IssuePermitRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *IssuePermitRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *IssuePermitRequest) GetPermitNumber() string {
	if x != nil {
		return x.PermitNumber
	}
	return ""
}

func (x *IssuePermitRequest) GetVehicleId() string {
	if x != nil {
		return x.VehicleId
	}
	return ""
}

func (x *IssuePermitRequest) GetIssuedAt() int64 {
	if x != nil {
		return x.IssuedAt
	}
	return 0
}

func (x *IssuePermitRequest) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

func (x *IssuePermitRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *IssuePermitRequest) GetOverrideLimits() bool {
	if x != nil {
		return x.OverrideLimits
	}
	return false
}

func (x *IssuePermitRequest) GetOverrideToken() string {
	if x != nil {
		return x.OverrideToken
	}
	return ""
}

func (x *IssuePermitRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type IssuePermitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool             `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code    string           `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message string           `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Permit  *Permit          `protobuf:"bytes,4,opt,name=permit,proto3" json:"permit,omitempty"`
	Caps    *Caps            `protobuf:"bytes,5,opt,name=caps,proto3" json:"caps,omitempty"`
	Details *CapacityDetails `protobuf:"bytes,6,opt,name=details,proto3" json:"details,omitempty"`
}

func (x *IssuePermitResponse) Reset() {
	*x = IssuePermitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IssuePermitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssuePermitResponse) ProtoMessage() {}

func (x *IssuePermitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssuePermitResponse.ProtoReflect.Descriptor instead.
func (*IssuePermitResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{6}
}

func (x *IssuePermitResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *IssuePermitResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *IssuePermitResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *IssuePermitResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

func (x *IssuePermitResponse) GetCaps() *Caps {
	if x != nil {
		return x.Caps
	}
	return nil
}

func (x *IssuePermitResponse) GetDetails() *CapacityDetails {
	if x != nil {
		return x.Details
	}
	return nil
}

type RevokePermitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PermitId string `protobuf:"bytes,1,opt,name=permit_id,json=permitId,proto3" json:"permit_id,omitempty"`
	Reason   string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (x *RevokePermitRequest) Reset() {
	*x = RevokePermitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RevokePermitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokePermitRequest) ProtoMessage() {}

func (x *RevokePermitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokePermitRequest.ProtoReflect.Descriptor instead.
func (*RevokePermitRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{7}
}

func (x *RevokePermitRequest) GetPermitId() string {
	if x != nil {
		return x.PermitId
	}
	return ""
}

func (x *RevokePermitRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type RevokePermitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool    `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code    string  `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message string  `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Permit  *Permit `protobuf:"bytes,4,opt,name=permit,proto3" json:"permit,omitempty"`
}

func (x *RevokePermitResponse) Reset() {
	*x = RevokePermitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RevokePermitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokePermitResponse) ProtoMessage() {}

func (x *RevokePermitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokePermitResponse.ProtoReflect.Descriptor instead.
func (*RevokePermitResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{8}
}

func (x *RevokePermitResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *RevokePermitResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *RevokePermitResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *RevokePermitResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

type MarkPermitExpiredRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PermitId string `protobuf:"bytes,1,opt,name=permit_id,json=permitId,proto3" json:"permit_id,omitempty"`
}

func (x *MarkPermitExpiredRequest) Reset() {
	*x = MarkPermitExpiredRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MarkPermitExpiredRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPermitExpiredRequest) ProtoMessage() {}

func (x *MarkPermitExpiredRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPermitExpiredRequest.ProtoReflect.Descriptor instead.
func (*MarkPermitExpiredRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{9}
}

func (x *MarkPermitExpiredRequest) GetPermitId() string {
	if x != nil {
		return x.PermitId
	}
	return ""
}

type MarkPermitExpiredResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool    `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code    string  `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message string  `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Permit  *Permit `protobuf:"bytes,4,opt,name=permit,proto3" json:"permit,omitempty"`
}

func (x *MarkPermitExpiredResponse) Reset() {
	*x = MarkPermitExpiredResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MarkPermitExpiredResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPermitExpiredResponse) ProtoMessage() {}

func (x *MarkPermitExpiredResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPermitExpiredResponse.ProtoReflect.Descriptor instead.
func (*MarkPermitExpiredResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{10}
}

func (x *MarkPermitExpiredResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *MarkPermitExpiredResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *MarkPermitExpiredResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *MarkPermitExpiredResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

type SetPermitExpirationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PermitId  string `protobuf:"bytes,1,opt,name=permit_id,json=permitId,proto3" json:"permit_id,omitempty"`
	ExpiresAt int64  `protobuf:"varint,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"` // 0 = 清除到期时间
}

func (x *SetPermitExpirationRequest) Reset() {
	*x = SetPermitExpirationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetPermitExpirationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPermitExpirationRequest) ProtoMessage() {}

func (x *SetPermitExpirationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPermitExpirationRequest.ProtoReflect.Descriptor instead.
func (*SetPermitExpirationRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{11}
}

func (x *SetPermitExpirationRequest) GetPermitId() string {
	if x != nil {
		return x.PermitId
	}
	return ""
}

func (x *SetPermitExpirationRequest) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

type SetPermitExpirationResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool    `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code    string  `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message string  `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Permit  *Permit `protobuf:"bytes,4,opt,name=permit,proto3" json:"permit,omitempty"`
}

func (x *SetPermitExpirationResponse) Reset() {
	*x = SetPermitExpirationResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetPermitExpirationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPermitExpirationResponse) ProtoMessage() {}

func (x *SetPermitExpirationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPermitExpirationResponse.ProtoReflect.Descriptor instead.
func (*SetPermitExpirationResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{12}
}

func (x *SetPermitExpirationResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *SetPermitExpirationResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *SetPermitExpirationResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *SetPermitExpirationResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

type ReplacePermitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PermitId     string `protobuf:"bytes,1,opt,name=permit_id,json=permitId,proto3" json:"permit_id,omitempty"`
	NewVehicleId string `protobuf:"bytes,2,opt,name=new_vehicle_id,json=newVehicleId,proto3" json:"new_vehicle_id,omitempty"`
	Notes        string `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedBy    string `protobuf:"bytes,4,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
}

func (x *ReplacePermitRequest) Reset() {
	*x = ReplacePermitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ReplacePermitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplacePermitRequest) ProtoMessage() {}

func (x *ReplacePermitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplacePermitRequest.ProtoReflect.Descriptor instead.
func (*ReplacePermitRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{13}
}

func (x *ReplacePermitRequest) GetPermitId() string {
	if x != nil {
		return x.PermitId
	}
	return ""
}

func (x *ReplacePermitRequest) GetNewVehicleId() string {
	if x != nil {
		return x.NewVehicleId
	}
	return ""
}

func (x *ReplacePermitRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ReplacePermitRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type ReplacePermitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool    `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code    string  `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message string  `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Permit  *Permit `protobuf:"bytes,4,opt,name=permit,proto3" json:"permit,omitempty"`
}

func (x *ReplacePermitResponse) Reset() {
	*x = ReplacePermitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ReplacePermitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplacePermitResponse) ProtoMessage() {}

func (x *ReplacePermitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplacePermitResponse.ProtoReflect.Descriptor instead.
func (*ReplacePermitResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{14}
}

func (x *ReplacePermitResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ReplacePermitResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ReplacePermitResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ReplacePermitResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

type GetAvailabilityRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UnitId string `protobuf:"bytes,1,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
}

func (x *GetAvailabilityRequest) Reset() {
	*x = GetAvailabilityRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAvailabilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAvailabilityRequest) ProtoMessage() {}

func (x *GetAvailabilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAvailabilityRequest.ProtoReflect.Descriptor instead.
func (*GetAvailabilityRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{15}
}

func (x *GetAvailabilityRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

type GetAvailabilityResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success       bool               `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Code          string             `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message       string             `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Current       *Counts            `protobuf:"bytes,4,opt,name=current,proto3" json:"current,omitempty"`
	Caps          *Caps              `protobuf:"bytes,5,opt,name=caps,proto3" json:"caps,omitempty"`
	Availability  *AvailabilityFlags `protobuf:"bytes,6,opt,name=availability,proto3" json:"availability,omitempty"`
	UnitId        string             `protobuf:"bytes,7,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	AssociationId string             `protobuf:"bytes,8,opt,name=association_id,json=associationId,proto3" json:"association_id,omitempty"`
}

func (x *GetAvailabilityResponse) Reset() {
	*x = GetAvailabilityResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetAvailabilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAvailabilityResponse) ProtoMessage() {}

func (x *GetAvailabilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAvailabilityResponse.ProtoReflect.Descriptor instead.
func (*GetAvailabilityResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{16}
}

func (x *GetAvailabilityResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *GetAvailabilityResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *GetAvailabilityResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *GetAvailabilityResponse) GetCurrent() *Counts {
	if x != nil {
		return x.Current
	}
	return nil
}

func (x *GetAvailabilityResponse) GetCaps() *Caps {
	if x != nil {
		return x.Caps
	}
	return nil
}

func (x *GetAvailabilityResponse) GetAvailability() *AvailabilityFlags {
	if x != nil {
		return x.Availability
	}
	return nil
}

func (x *GetAvailabilityResponse) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *GetAvailabilityResponse) GetAssociationId() string {
	if x != nil {
		return x.AssociationId
	}
	return ""
}

type GetPermitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *GetPermitRequest) Reset() {
	*x = GetPermitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetPermitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPermitRequest) ProtoMessage() {}

func (x *GetPermitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPermitRequest.ProtoReflect.Descriptor instead.
func (*GetPermitRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{17}
}

func (x *GetPermitRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPermitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Permit *Permit `protobuf:"bytes,1,opt,name=permit,proto3" json:"permit,omitempty"`
}

func (x *GetPermitResponse) Reset() {
	*x = GetPermitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetPermitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPermitResponse) ProtoMessage() {}

func (x *GetPermitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPermitResponse.ProtoReflect.Descriptor instead.
func (*GetPermitResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{18}
}

func (x *GetPermitResponse) GetPermit() *Permit {
	if x != nil {
		return x.Permit
	}
	return nil
}

type ListPermitsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UnitId   string `protobuf:"bytes,1,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	Status   string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Type     string `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Page     int32  `protobuf:"varint,4,opt,name=page,proto3" json:"page,omitempty"`
	PageSize int32  `protobuf:"varint,5,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
}

func (x *ListPermitsRequest) Reset() {
	*x = ListPermitsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[19]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPermitsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPermitsRequest) ProtoMessage() {}

func (x *ListPermitsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[19]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPermitsRequest.ProtoReflect.Descriptor instead.
func (*ListPermitsRequest) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{19}
}

func (x *ListPermitsRequest) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *ListPermitsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListPermitsRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ListPermitsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListPermitsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListPermitsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Permits []*Permit `protobuf:"bytes,1,rep,name=permits,proto3" json:"permits,omitempty"`
	Total   int64     `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (x *ListPermitsResponse) Reset() {
	*x = ListPermitsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_api_proto_permit_permit_proto_msgTypes[20]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPermitsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPermitsResponse) ProtoMessage() {}

func (x *ListPermitsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_api_proto_permit_permit_proto_msgTypes[20]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPermitsResponse.ProtoReflect.Descriptor instead.
func (*ListPermitsResponse) Descriptor() ([]byte, []int) {
	return file_internal_api_proto_permit_permit_proto_rawDescGZIP(), []int{20}
}

func (x *ListPermitsResponse) GetPermits() []*Permit {
	if x != nil {
		return x.Permits
	}
	return nil
}

func (x *ListPermitsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

var File_internal_api_proto_permit_permit_proto protoreflect.FileDescriptor

var file_internal_api_proto_permit_permit_proto_rawDesc = []byte{
	0x0a, 0x26, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2f, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x12, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x22, 0xe4, 0x03, 0x0a,
	0x06, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x61, 0x73, 0x73, 0x6f, 0x63,
	0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0d, 0x61, 0x73, 0x73, 0x6f, 0x63, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x17,
	0x0a, 0x07, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x75, 0x6e, 0x69, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x76, 0x65, 0x68, 0x69, 0x63,
	0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x76, 0x65, 0x68,
	0x69, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x5f, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x4e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x12,
	0x16, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x64, 0x69, 0x73, 0x70, 0x6c,
	0x61, 0x79, 0x5f, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0d, 0x64, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1b,
	0x0a, 0x09, 0x69, 0x73, 0x73, 0x75, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x09, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x08, 0x69, 0x73, 0x73, 0x75, 0x65, 0x64, 0x41, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x65,
	0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x09, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x41, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65,
	0x76, 0x6f, 0x6b, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09,
	0x72, 0x65, 0x76, 0x6f, 0x6b, 0x65, 0x64, 0x41, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x72, 0x65, 0x76,
	0x6f, 0x6b, 0x65, 0x64, 0x5f, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x0c, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0d, 0x72, 0x65, 0x76, 0x6f, 0x6b, 0x65, 0x64, 0x52, 0x65, 0x61, 0x73, 0x6f, 0x6e,
	0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x64, 0x5f, 0x62, 0x79, 0x18, 0x0e, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61,
	0x74, 0x65, 0x64, 0x42, 0x79, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64,
	0x5f, 0x61, 0x74, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74,
	0x65, 0x64, 0x41, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x5f,
	0x61, 0x74, 0x18, 0x10, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65,
	0x64, 0x41, 0x74, 0x22, 0x77, 0x0a, 0x04, 0x43, 0x61, 0x70, 0x73, 0x12, 0x21, 0x0a, 0x0c, 0x6d,
	0x61, 0x78, 0x5f, 0x72, 0x65, 0x73, 0x69, 0x64, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x0b, 0x6d, 0x61, 0x78, 0x52, 0x65, 0x73, 0x69, 0x64, 0x65, 0x6e, 0x74, 0x12, 0x1f,
	0x0a, 0x0b, 0x6d, 0x61, 0x78, 0x5f, 0x76, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0a, 0x6d, 0x61, 0x78, 0x56, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x12,
	0x2b, 0x0a, 0x11, 0x62, 0x61, 0x73, 0x65, 0x6c, 0x69, 0x6e, 0x65, 0x5f, 0x72, 0x65, 0x73, 0x69,
	0x64, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x10, 0x62, 0x61, 0x73, 0x65,
	0x6c, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x73, 0x69, 0x64, 0x65, 0x6e, 0x74, 0x22, 0x3e, 0x0a, 0x06,
	0x43, 0x6f, 0x75, 0x6e, 0x74, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x72, 0x65, 0x73, 0x69, 0x64, 0x65,
	0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x72, 0x65, 0x73, 0x69, 0x64, 0x65,
	0x6e, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x76, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x07, 0x76, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x22, 0x6d, 0x0a, 0x11,
	0x41, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x46, 0x6c, 0x61, 0x67,
	0x73, 0x12, 0x2c, 0x0a, 0x12, 0x63, 0x61, 0x6e, 0x5f, 0x69, 0x73, 0x73, 0x75, 0x65, 0x5f, 0x72,
	0x65, 0x73, 0x69, 0x64, 0x65, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x10, 0x63,
	0x61, 0x6e, 0x49, 0x73, 0x73, 0x75, 0x65, 0x52, 0x65, 0x73, 0x69, 0x64, 0x65, 0x6e, 0x74, 0x12,
	0x2a, 0x0a, 0x11, 0x63, 0x61, 0x6e, 0x5f, 0x69, 0x73, 0x73, 0x75, 0x65, 0x5f, 0x76, 0x69, 0x73,
	0x69, 0x74, 0x6f, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0f, 0x63, 0x61, 0x6e, 0x49,
	0x73, 0x73, 0x75, 0x65, 0x56, 0x69, 0x73, 0x69, 0x74, 0x6f, 0x72, 0x22, 0x5c, 0x0a, 0x0f, 0x43,
	0x61, 0x70, 0x61, 0x63, 0x69, 0x74, 0x79, 0x44, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x73, 0x12, 0x16,
	0x0a, 0x06, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06,
	0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x6d, 0x61, 0x78, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x03, 0x6d, 0x61, 0x78, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x54, 0x79, 0x70, 0x65, 0x22, 0xc6, 0x02, 0x0a, 0x12, 0x49, 0x73,
	0x73, 0x75, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x17, 0x0a, 0x07, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x75, 0x6e, 0x69, 0x74, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x79, 0x70,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x23, 0x0a,
	0x0d, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x5f, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x4e, 0x75, 0x6d, 0x62,
	0x65, 0x72, 0x12, 0x1d, 0x0a, 0x0a, 0x76, 0x65, 0x68, 0x69, 0x63, 0x6c, 0x65, 0x5f, 0x69, 0x64,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x76, 0x65, 0x68, 0x69, 0x63, 0x6c, 0x65, 0x49,
	0x64, 0x12, 0x1b, 0x0a, 0x09, 0x69, 0x73, 0x73, 0x75, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x69, 0x73, 0x73, 0x75, 0x65, 0x64, 0x41, 0x74, 0x12, 0x1d,
	0x0a, 0x0a, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x09, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x41, 0x74, 0x12, 0x14, 0x0a,
	0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x6f,
	0x74, 0x65, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x6f, 0x76, 0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x5f,
	0x6c, 0x69, 0x6d, 0x69, 0x74, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0e, 0x6f, 0x76,
	0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x4c, 0x69, 0x6d, 0x69, 0x74, 0x73, 0x12, 0x25, 0x0a, 0x0e,
	0x6f, 0x76, 0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x09,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x6f, 0x76, 0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x54, 0x6f,
	0x6b, 0x65, 0x6e, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x62,
	0x79, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64,
	0x42, 0x79, 0x22, 0xfe, 0x01, 0x0a, 0x13, 0x49, 0x73, 0x73, 0x75, 0x65, 0x50, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75,
	0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63,
	0x63, 0x65, 0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73,
	0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61,
	0x67, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65,
	0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x06,
	0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x2c, 0x0a, 0x04, 0x63, 0x61, 0x70, 0x73, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69,
	0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x43, 0x61, 0x70, 0x73, 0x52, 0x04,
	0x63, 0x61, 0x70, 0x73, 0x12, 0x3d, 0x0a, 0x07, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x73, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x23, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72,
	0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x43, 0x61, 0x70, 0x61, 0x63,
	0x69, 0x74, 0x79, 0x44, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x73, 0x52, 0x07, 0x64, 0x65, 0x74, 0x61,
	0x69, 0x6c, 0x73, 0x22, 0x4a, 0x0a, 0x13, 0x52, 0x65, 0x76, 0x6f, 0x6b, 0x65, 0x50, 0x65, 0x72,
	0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f,
	0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x22,
	0x92, 0x01, 0x0a, 0x14, 0x52, 0x65, 0x76, 0x6f, 0x6b, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63,
	0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65,
	0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67,
	0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65,
	0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x06, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x22, 0x37, 0x0a, 0x18, 0x4d, 0x61, 0x72, 0x6b, 0x50, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1b, 0x0a, 0x09, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x08, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x49, 0x64, 0x22, 0x97, 0x01,
	0x0a, 0x19, 0x4d, 0x61, 0x72, 0x6b, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69,
	0x72, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73,
	0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75,
	0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73,
	0x73, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73,
	0x61, 0x67, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76,
	0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52,
	0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x22, 0x58, 0x0a, 0x1a, 0x53, 0x65, 0x74, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x5f, 0x61, 0x74,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x41,
	0x74, 0x22, 0x99, 0x01, 0x0a, 0x1b, 0x53, 0x65, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x45,
	0x78, 0x70, 0x69, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63,
	0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x12,
	0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72,
	0x6d, 0x69, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x22, 0x8e, 0x01,
	0x0a, 0x14, 0x52, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x70, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x49, 0x64, 0x12, 0x24, 0x0a, 0x0e, 0x6e, 0x65, 0x77, 0x5f, 0x76, 0x65, 0x68, 0x69, 0x63,
	0x6c, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x6e, 0x65, 0x77,
	0x56, 0x65, 0x68, 0x69, 0x63, 0x6c, 0x65, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f, 0x74,
	0x65, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x6f, 0x74, 0x65, 0x73, 0x12,
	0x1d, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x62, 0x79, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x42, 0x79, 0x22, 0x93,
	0x01, 0x0a, 0x15, 0x52, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63,
	0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65,
	0x73, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x04, 0x63, 0x6f, 0x64, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67,
	0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65,
	0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x06, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x22, 0x31, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x41, 0x76, 0x61, 0x69, 0x6c,
	0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17,
	0x0a, 0x07, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x75, 0x6e, 0x69, 0x74, 0x49, 0x64, 0x22, 0xd0, 0x02, 0x0a, 0x17, 0x47, 0x65, 0x74, 0x41,
	0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x12, 0x0a,
	0x04, 0x63, 0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x63, 0x6f, 0x64,
	0x65, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x34, 0x0a, 0x07, 0x63,
	0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x2e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x73, 0x52, 0x07, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e,
	0x74, 0x12, 0x2c, 0x0a, 0x04, 0x63, 0x61, 0x70, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x18, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x2e, 0x43, 0x61, 0x70, 0x73, 0x52, 0x04, 0x63, 0x61, 0x70, 0x73, 0x12,
	0x49, 0x0a, 0x0c, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x25, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72,
	0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x41, 0x76, 0x61, 0x69, 0x6c,
	0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x46, 0x6c, 0x61, 0x67, 0x73, 0x52, 0x0c, 0x61, 0x76,
	0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x6e,
	0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x6e, 0x69,
	0x74, 0x49, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x61, 0x73, 0x73, 0x6f, 0x63, 0x69, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x61, 0x73, 0x73,
	0x6f, 0x63, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0x22, 0x0a, 0x10, 0x47, 0x65,
	0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x0e,
	0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x22, 0x47,
	0x0a, 0x11, 0x47, 0x65, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76,
	0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52,
	0x06, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x22, 0x8a, 0x01, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74,
	0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17,
	0x0a, 0x07, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x75, 0x6e, 0x69, 0x74, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12,
	0x12, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74,
	0x79, 0x70, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x70, 0x61, 0x67, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x04, 0x70, 0x61, 0x67, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x70, 0x61, 0x67, 0x65, 0x5f,
	0x73, 0x69, 0x7a, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x70, 0x61, 0x67, 0x65,
	0x53, 0x69, 0x7a, 0x65, 0x22, 0x61, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x34, 0x0a, 0x07, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x2e, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x07, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x73, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x05, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x32, 0xc8, 0x06, 0x0a, 0x0d, 0x50, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x5e, 0x0a, 0x0b, 0x49, 0x73, 0x73,
	0x75, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x26, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x49, 0x73,
	0x73, 0x75, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x27, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x49, 0x73, 0x73, 0x75, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x61, 0x0a, 0x0c, 0x52, 0x65, 0x76,
	0x6f, 0x6b, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x27, 0x2e, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x52,
	0x65, 0x76, 0x6f, 0x6b, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x28, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65,
	0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x52, 0x65, 0x76, 0x6f, 0x6b, 0x65, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x70, 0x0a, 0x11,
	0x4d, 0x61, 0x72, 0x6b, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x65,
	0x64, 0x12, 0x2c, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e,
	0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x50, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x2d, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x45,
	0x78, 0x70, 0x69, 0x72, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x76,
	0x0a, 0x13, 0x53, 0x65, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2e, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72,
	0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x53, 0x65, 0x74, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2f, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72,
	0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x53, 0x65, 0x74, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x45, 0x78, 0x70, 0x69, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x64, 0x0a, 0x0d, 0x52, 0x65, 0x70, 0x6c, 0x61, 0x63,
	0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x28, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x52, 0x65, 0x70,
	0x6c, 0x61, 0x63, 0x65, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x29, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e,
	0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x52, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x6a, 0x0a, 0x0f,
	0x47, 0x65, 0x74, 0x41, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x12,
	0x2a, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69,
	0x6c, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x2e, 0x47, 0x65, 0x74, 0x41, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x58, 0x0a, 0x09, 0x47, 0x65, 0x74, 0x50,
	0x65, 0x72, 0x6d, 0x69, 0x74, 0x12, 0x24, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72,
	0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x47, 0x65, 0x74, 0x50, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x70, 0x65,
	0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x2e, 0x47, 0x65, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x5e, 0x0a, 0x0b, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74,
	0x73, 0x12, 0x26, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e,
	0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69,
	0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x64, 0x72, 0x69, 0x76, 0x65, 0x2e, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x2e, 0x4c,
	0x69, 0x73, 0x74, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x42, 0x47, 0x5a, 0x45, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d,
	0x2f, 0x50, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x44, 0x72, 0x69, 0x76, 0x65, 0x2f, 0x50, 0x65, 0x72,
	0x6d, 0x69, 0x74, 0x44, 0x72, 0x69, 0x76, 0x65, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61,
	0x6c, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x70, 0x65, 0x72, 0x6d,
	0x69, 0x74, 0x3b, 0x70, 0x65, 0x72, 0x6d, 0x69, 0x74, 0x70, 0x62, 0x62, 0x06, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x33,
}

var (
	file_internal_api_proto_permit_permit_proto_rawDescOnce sync.Once
	file_internal_api_proto_permit_permit_proto_rawDescData = file_internal_api_proto_permit_permit_proto_rawDesc
)

func file_internal_api_proto_permit_permit_proto_rawDescGZIP() []byte {
	file_internal_api_proto_permit_permit_proto_rawDescOnce.Do(func() {
		file_internal_api_proto_permit_permit_proto_rawDescData = protoimpl.X.CompressGZIP(file_internal_api_proto_permit_permit_proto_rawDescData)
	})
	return file_internal_api_proto_permit_permit_proto_rawDescData
}

var file_internal_api_proto_permit_permit_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_internal_api_proto_permit_permit_proto_goTypes = []interface{}{
	(*Permit)(nil),                      // 0: permitdrive.permit.Permit
	(*Caps)(nil),                        // 1: permitdrive.permit.Caps
	(*Counts)(nil),                      // 2: permitdrive.permit.Counts
	(*AvailabilityFlags)(nil),           // 3: permitdrive.permit.AvailabilityFlags
	(*CapacityDetails)(nil),             // 4: permitdrive.permit.CapacityDetails
	(*IssuePermitRequest)(nil),          // 5: permitdrive.permit.IssuePermitRequest
	(*IssuePermitResponse)(nil),         // 6: permitdrive.permit.IssuePermitResponse
	(*RevokePermitRequest)(nil),         // 7: permitdrive.permit.RevokePermitRequest
	(*RevokePermitResponse)(nil),        // 8: permitdrive.permit.RevokePermitResponse
	(*MarkPermitExpiredRequest)(nil),    // 9: permitdrive.permit.MarkPermitExpiredRequest
	(*MarkPermitExpiredResponse)(nil),   // 10: permitdrive.permit.MarkPermitExpiredResponse
	(*SetPermitExpirationRequest)(nil),  // 11: permitdrive.permit.SetPermitExpirationRequest
	(*SetPermitExpirationResponse)(nil), // 12: permitdrive.permit.SetPermitExpirationResponse
	(*ReplacePermitRequest)(nil),        // 13: permitdrive.permit.ReplacePermitRequest
	(*ReplacePermitResponse)(nil),       // 14: permitdrive.permit.ReplacePermitResponse
	(*GetAvailabilityRequest)(nil),      // 15: permitdrive.permit.GetAvailabilityRequest
	(*GetAvailabilityResponse)(nil),     // 16: permitdrive.permit.GetAvailabilityResponse
	(*GetPermitRequest)(nil),            // 17: permitdrive.permit.GetPermitRequest
	(*GetPermitResponse)(nil),           // 18: permitdrive.permit.GetPermitResponse
	(*ListPermitsRequest)(nil),          // 19: permitdrive.permit.ListPermitsRequest
	(*ListPermitsResponse)(nil),         // 20: permitdrive.permit.ListPermitsResponse
}
var file_internal_api_proto_permit_permit_proto_depIdxs = []int32{
	0,  // 0: permitdrive.permit.IssuePermitResponse.permit:type_name -> permitdrive.permit.Permit
	1,  // 1: permitdrive.permit.IssuePermitResponse.caps:type_name -> permitdrive.permit.Caps
	4,  // 2: permitdrive.permit.IssuePermitResponse.details:type_name -> permitdrive.permit.CapacityDetails
	0,  // 3: permitdrive.permit.RevokePermitResponse.permit:type_name -> permitdrive.permit.Permit
	0,  // 4: permitdrive.permit.MarkPermitExpiredResponse.permit:type_name -> permitdrive.permit.Permit
	0,  // 5: permitdrive.permit.SetPermitExpirationResponse.permit:type_name -> permitdrive.permit.Permit
	0,  // 6: permitdrive.permit.ReplacePermitResponse.permit:type_name -> permitdrive.permit.Permit
	2,  // 7: permitdrive.permit.GetAvailabilityResponse.current:type_name -> permitdrive.permit.Counts
	1,  // 8: permitdrive.permit.GetAvailabilityResponse.caps:type_name -> permitdrive.permit.Caps
	3,  // 9: permitdrive.permit.GetAvailabilityResponse.availability:type_name -> permitdrive.permit.AvailabilityFlags
	0,  // 10: permitdrive.permit.GetPermitResponse.permit:type_name -> permitdrive.permit.Permit
	0,  // 11: permitdrive.permit.ListPermitsResponse.permits:type_name -> permitdrive.permit.Permit
	5,  // 12: permitdrive.permit.PermitService.IssuePermit:input_type -> permitdrive.permit.IssuePermitRequest
	7,  // 13: permitdrive.permit.PermitService.RevokePermit:input_type -> permitdrive.permit.RevokePermitRequest
	9,  // 14: permitdrive.permit.PermitService.MarkPermitExpired:input_type -> permitdrive.permit.MarkPermitExpiredRequest
	11, // 15: permitdrive.permit.PermitService.SetPermitExpiration:input_type -> permitdrive.permit.SetPermitExpirationRequest
	13, // 16: permitdrive.permit.PermitService.ReplacePermit:input_type -> permitdrive.permit.ReplacePermitRequest
	15, // 17: permitdrive.permit.PermitService.GetAvailability:input_type -> permitdrive.permit.GetAvailabilityRequest
	17, // 18: permitdrive.permit.PermitService.GetPermit:input_type -> permitdrive.permit.GetPermitRequest
	19, // 19: permitdrive.permit.PermitService.ListPermits:input_type -> permitdrive.permit.ListPermitsRequest
	6,  // 20: permitdrive.permit.PermitService.IssuePermit:output_type -> permitdrive.permit.IssuePermitResponse
	8,  // 21: permitdrive.permit.PermitService.RevokePermit:output_type -> permitdrive.permit.RevokePermitResponse
	10, // 22: permitdrive.permit.PermitService.MarkPermitExpired:output_type -> permitdrive.permit.MarkPermitExpiredResponse
	12, // 23: permitdrive.permit.PermitService.SetPermitExpiration:output_type -> permitdrive.permit.SetPermitExpirationResponse
	14, // 24: permitdrive.permit.PermitService.ReplacePermit:output_type -> permitdrive.permit.ReplacePermitResponse
	16, // 25: permitdrive.permit.PermitService.GetAvailability:output_type -> permitdrive.permit.GetAvailabilityResponse
	18, // 26: permitdrive.permit.PermitService.GetPermit:output_type -> permitdrive.permit.GetPermitResponse
	20, // 27: permitdrive.permit.PermitService.ListPermits:output_type -> permitdrive.permit.ListPermitsResponse
	20, // [20:28] is the sub-list for method output_type
	12, // [12:20] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_internal_api_proto_permit_permit_proto_init() }
func file_internal_api_proto_permit_permit_proto_init() {
	if File_internal_api_proto_permit_permit_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_internal_api_proto_permit_permit_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Permit); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Caps); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Counts); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AvailabilityFlags); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*CapacityDetails); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*IssuePermitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*IssuePermitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[7].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*RevokePermitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[8].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*RevokePermitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[9].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MarkPermitExpiredRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[10].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MarkPermitExpiredResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[11].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SetPermitExpirationRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[12].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SetPermitExpirationResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[13].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ReplacePermitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[14].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ReplacePermitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[15].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetAvailabilityRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[16].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetAvailabilityResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[17].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetPermitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[18].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetPermitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[19].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListPermitsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_api_proto_permit_permit_proto_msgTypes[20].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListPermitsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_internal_api_proto_permit_permit_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_api_proto_permit_permit_proto_goTypes,
		DependencyIndexes: file_internal_api_proto_permit_permit_proto_depIdxs,
		MessageInfos:      file_internal_api_proto_permit_permit_proto_msgTypes,
	}.Build()
	File_internal_api_proto_permit_permit_proto = out.File
	file_internal_api_proto_permit_permit_proto_rawDesc = nil
	file_internal_api_proto_permit_permit_proto_goTypes = nil
	file_internal_api_proto_permit_permit_proto_depIdxs = nil
}
