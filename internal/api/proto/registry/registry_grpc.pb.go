// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: internal/api/proto/registry/registry.proto

package registrypb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	AssociationService_UpsertAssociation_FullMethodName = "/permitdrive.registry.AssociationService/UpsertAssociation"
	AssociationService_GetAssociation_FullMethodName    = "/permitdrive.registry.AssociationService/GetAssociation"
	AssociationService_ListAssociations_FullMethodName  = "/permitdrive.registry.AssociationService/ListAssociations"
)

// AssociationServiceClient is the client API for AssociationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AssociationServiceClient interface {
	UpsertAssociation(ctx context.Context, in *UpsertAssociationRequest, opts ...grpc.CallOption) (*UpsertAssociationResponse, error)
	GetAssociation(ctx context.Context, in *GetAssociationRequest, opts ...grpc.CallOption) (*GetAssociationResponse, error)
	ListAssociations(ctx context.Context, in *ListAssociationsRequest, opts ...grpc.CallOption) (*ListAssociationsResponse, error)
}

type associationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAssociationServiceClient(cc grpc.ClientConnInterface) AssociationServiceClient {
	return &associationServiceClient{cc}
}

func (c *associationServiceClient) UpsertAssociation(ctx context.Context, in *UpsertAssociationRequest, opts ...grpc.CallOption) (*UpsertAssociationResponse, error) {
	out := new(UpsertAssociationResponse)
	err := c.cc.Invoke(ctx, AssociationService_UpsertAssociation_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *associationServiceClient) GetAssociation(ctx context.Context, in *GetAssociationRequest, opts ...grpc.CallOption) (*GetAssociationResponse, error) {
	out := new(GetAssociationResponse)
	err := c.cc.Invoke(ctx, AssociationService_GetAssociation_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *associationServiceClient) ListAssociations(ctx context.Context, in *ListAssociationsRequest, opts ...grpc.CallOption) (*ListAssociationsResponse, error) {
	out := new(ListAssociationsResponse)
	err := c.cc.Invoke(ctx, AssociationService_ListAssociations_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssociationServiceServer is the server API for AssociationService service.
// All implementations must embed UnimplementedAssociationServiceServer
// for forward compatibility
type AssociationServiceServer interface {
	UpsertAssociation(context.Context, *UpsertAssociationRequest) (*UpsertAssociationResponse, error)
	GetAssociation(context.Context, *GetAssociationRequest) (*GetAssociationResponse, error)
	ListAssociations(context.Context, *ListAssociationsRequest) (*ListAssociationsResponse, error)
	mustEmbedUnimplementedAssociationServiceServer()
}

// UnimplementedAssociationServiceServer must be embedded to have forward compatible implementations.
type UnimplementedAssociationServiceServer struct {
}

func (UnimplementedAssociationServiceServer) UpsertAssociation(context.Context, *UpsertAssociationRequest) (*UpsertAssociationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertAssociation not implemented")
}
func (UnimplementedAssociationServiceServer) GetAssociation(context.Context, *GetAssociationRequest) (*GetAssociationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssociation not implemented")
}
func (UnimplementedAssociationServiceServer) ListAssociations(context.Context, *ListAssociationsRequest) (*ListAssociationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAssociations not implemented")
}
func (UnimplementedAssociationServiceServer) mustEmbedUnimplementedAssociationServiceServer() {}

// UnsafeAssociationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AssociationServiceServer will
// result in compilation errors.
type UnsafeAssociationServiceServer interface {
	mustEmbedUnimplementedAssociationServiceServer()
}

func RegisterAssociationServiceServer(s grpc.ServiceRegistrar, srv AssociationServiceServer) {
	s.RegisterService(&AssociationService_ServiceDesc, srv)
}

func _AssociationService_UpsertAssociation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertAssociationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssociationServiceServer).UpsertAssociation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssociationService_UpsertAssociation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssociationServiceServer).UpsertAssociation(ctx, req.(*UpsertAssociationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssociationService_GetAssociation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssociationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssociationServiceServer).GetAssociation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssociationService_GetAssociation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssociationServiceServer).GetAssociation(ctx, req.(*GetAssociationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssociationService_ListAssociations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAssociationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssociationServiceServer).ListAssociations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssociationService_ListAssociations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssociationServiceServer).ListAssociations(ctx, req.(*ListAssociationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AssociationService_ServiceDesc is the grpc.ServiceDesc for AssociationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AssociationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "permitdrive.registry.AssociationService",
	HandlerType: (*AssociationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertAssociation",
			Handler:    _AssociationService_UpsertAssociation_Handler,
		},
		{
			MethodName: "GetAssociation",
			Handler:    _AssociationService_GetAssociation_Handler,
		},
		{
			MethodName: "ListAssociations",
			Handler:    _AssociationService_ListAssociations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/registry/registry.proto",
}

const (
	UnitService_UpsertUnit_FullMethodName = "/permitdrive.registry.UnitService/UpsertUnit"
	UnitService_GetUnit_FullMethodName    = "/permitdrive.registry.UnitService/GetUnit"
	UnitService_ListUnits_FullMethodName  = "/permitdrive.registry.UnitService/ListUnits"
)

// UnitServiceClient is the client API for UnitService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type UnitServiceClient interface {
	UpsertUnit(ctx context.Context, in *UpsertUnitRequest, opts ...grpc.CallOption) (*UpsertUnitResponse, error)
	GetUnit(ctx context.Context, in *GetUnitRequest, opts ...grpc.CallOption) (*GetUnitResponse, error)
	ListUnits(ctx context.Context, in *ListUnitsRequest, opts ...grpc.CallOption) (*ListUnitsResponse, error)
}

type unitServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUnitServiceClient(cc grpc.ClientConnInterface) UnitServiceClient {
	return &unitServiceClient{cc}
}

func (c *unitServiceClient) UpsertUnit(ctx context.Context, in *UpsertUnitRequest, opts ...grpc.CallOption) (*UpsertUnitResponse, error) {
	out := new(UpsertUnitResponse)
	err := c.cc.Invoke(ctx, UnitService_UpsertUnit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *unitServiceClient) GetUnit(ctx context.Context, in *GetUnitRequest, opts ...grpc.CallOption) (*GetUnitResponse, error) {
	out := new(GetUnitResponse)
	err := c.cc.Invoke(ctx, UnitService_GetUnit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *unitServiceClient) ListUnits(ctx context.Context, in *ListUnitsRequest, opts ...grpc.CallOption) (*ListUnitsResponse, error) {
	out := new(ListUnitsResponse)
	err := c.cc.Invoke(ctx, UnitService_ListUnits_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnitServiceServer is the server API for UnitService service.
// All implementations must embed UnimplementedUnitServiceServer
// for forward compatibility
type UnitServiceServer interface {
	UpsertUnit(context.Context, *UpsertUnitRequest) (*UpsertUnitResponse, error)
	GetUnit(context.Context, *GetUnitRequest) (*GetUnitResponse, error)
	ListUnits(context.Context, *ListUnitsRequest) (*ListUnitsResponse, error)
	mustEmbedUnimplementedUnitServiceServer()
}

// UnimplementedUnitServiceServer must be embedded to have forward compatible implementations.
type UnimplementedUnitServiceServer struct {
}

func (UnimplementedUnitServiceServer) UpsertUnit(context.Context, *UpsertUnitRequest) (*UpsertUnitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertUnit not implemented")
}
func (UnimplementedUnitServiceServer) GetUnit(context.Context, *GetUnitRequest) (*GetUnitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUnit not implemented")
}
func (UnimplementedUnitServiceServer) ListUnits(context.Context, *ListUnitsRequest) (*ListUnitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUnits not implemented")
}
func (UnimplementedUnitServiceServer) mustEmbedUnimplementedUnitServiceServer() {}

// UnsafeUnitServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UnitServiceServer will
// result in compilation errors.
type UnsafeUnitServiceServer interface {
	mustEmbedUnimplementedUnitServiceServer()
}

func RegisterUnitServiceServer(s grpc.ServiceRegistrar, srv UnitServiceServer) {
	s.RegisterService(&UnitService_ServiceDesc, srv)
}

func _UnitService_UpsertUnit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertUnitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnitServiceServer).UpsertUnit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnitService_UpsertUnit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnitServiceServer).UpsertUnit(ctx, req.(*UpsertUnitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnitService_GetUnit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUnitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnitServiceServer).GetUnit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnitService_GetUnit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnitServiceServer).GetUnit(ctx, req.(*GetUnitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnitService_ListUnits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUnitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnitServiceServer).ListUnits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnitService_ListUnits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnitServiceServer).ListUnits(ctx, req.(*ListUnitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UnitService_ServiceDesc is the grpc.ServiceDesc for UnitService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UnitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "permitdrive.registry.UnitService",
	HandlerType: (*UnitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertUnit",
			Handler:    _UnitService_UpsertUnit_Handler,
		},
		{
			MethodName: "GetUnit",
			Handler:    _UnitService_GetUnit_Handler,
		},
		{
			MethodName: "ListUnits",
			Handler:    _UnitService_ListUnits_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/registry/registry.proto",
}

const (
	VehicleService_UpsertVehicle_FullMethodName  = "/permitdrive.registry.VehicleService/UpsertVehicle"
	VehicleService_GetVehicle_FullMethodName     = "/permitdrive.registry.VehicleService/GetVehicle"
	VehicleService_ListVehicles_FullMethodName   = "/permitdrive.registry.VehicleService/ListVehicles"
	VehicleService_ArchiveVehicle_FullMethodName = "/permitdrive.registry.VehicleService/ArchiveVehicle"
)

// VehicleServiceClient is the client API for VehicleService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type VehicleServiceClient interface {
	UpsertVehicle(ctx context.Context, in *UpsertVehicleRequest, opts ...grpc.CallOption) (*UpsertVehicleResponse, error)
	GetVehicle(ctx context.Context, in *GetVehicleRequest, opts ...grpc.CallOption) (*GetVehicleResponse, error)
	ListVehicles(ctx context.Context, in *ListVehiclesRequest, opts ...grpc.CallOption) (*ListVehiclesResponse, error)
	ArchiveVehicle(ctx context.Context, in *ArchiveVehicleRequest, opts ...grpc.CallOption) (*ArchiveVehicleResponse, error)
}

type vehicleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVehicleServiceClient(cc grpc.ClientConnInterface) VehicleServiceClient {
	return &vehicleServiceClient{cc}
}

func (c *vehicleServiceClient) UpsertVehicle(ctx context.Context, in *UpsertVehicleRequest, opts ...grpc.CallOption) (*UpsertVehicleResponse, error) {
	out := new(UpsertVehicleResponse)
	err := c.cc.Invoke(ctx, VehicleService_UpsertVehicle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleServiceClient) GetVehicle(ctx context.Context, in *GetVehicleRequest, opts ...grpc.CallOption) (*GetVehicleResponse, error) {
	out := new(GetVehicleResponse)
	err := c.cc.Invoke(ctx, VehicleService_GetVehicle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleServiceClient) ListVehicles(ctx context.Context, in *ListVehiclesRequest, opts ...grpc.CallOption) (*ListVehiclesResponse, error) {
	out := new(ListVehiclesResponse)
	err := c.cc.Invoke(ctx, VehicleService_ListVehicles_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleServiceClient) ArchiveVehicle(ctx context.Context, in *ArchiveVehicleRequest, opts ...grpc.CallOption) (*ArchiveVehicleResponse, error) {
	out := new(ArchiveVehicleResponse)
	err := c.cc.Invoke(ctx, VehicleService_ArchiveVehicle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VehicleServiceServer is the server API for VehicleService service.
// All implementations must embed UnimplementedVehicleServiceServer
// for forward compatibility
type VehicleServiceServer interface {
	UpsertVehicle(context.Context, *UpsertVehicleRequest) (*UpsertVehicleResponse, error)
	GetVehicle(context.Context, *GetVehicleRequest) (*GetVehicleResponse, error)
	ListVehicles(context.Context, *ListVehiclesRequest) (*ListVehiclesResponse, error)
	ArchiveVehicle(context.Context, *ArchiveVehicleRequest) (*ArchiveVehicleResponse, error)
	mustEmbedUnimplementedVehicleServiceServer()
}

// UnimplementedVehicleServiceServer must be embedded to have forward compatible implementations.
type UnimplementedVehicleServiceServer struct {
}

func (UnimplementedVehicleServiceServer) UpsertVehicle(context.Context, *UpsertVehicleRequest) (*UpsertVehicleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) GetVehicle(context.Context, *GetVehicleRequest) (*GetVehicleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) ListVehicles(context.Context, *ListVehiclesRequest) (*ListVehiclesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVehicles not implemented")
}
func (UnimplementedVehicleServiceServer) ArchiveVehicle(context.Context, *ArchiveVehicleRequest) (*ArchiveVehicleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ArchiveVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) mustEmbedUnimplementedVehicleServiceServer() {}

// UnsafeVehicleServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VehicleServiceServer will
// result in compilation errors.
type UnsafeVehicleServiceServer interface {
	mustEmbedUnimplementedVehicleServiceServer()
}

func RegisterVehicleServiceServer(s grpc.ServiceRegistrar, srv VehicleServiceServer) {
	s.RegisterService(&VehicleService_ServiceDesc, srv)
}

func _VehicleService_UpsertVehicle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertVehicleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehicleServiceServer).UpsertVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VehicleService_UpsertVehicle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VehicleServiceServer).UpsertVehicle(ctx, req.(*UpsertVehicleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VehicleService_GetVehicle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVehicleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehicleServiceServer).GetVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VehicleService_GetVehicle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VehicleServiceServer).GetVehicle(ctx, req.(*GetVehicleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VehicleService_ListVehicles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVehiclesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehicleServiceServer).ListVehicles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VehicleService_ListVehicles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VehicleServiceServer).ListVehicles(ctx, req.(*ListVehiclesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VehicleService_ArchiveVehicle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ArchiveVehicleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehicleServiceServer).ArchiveVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VehicleService_ArchiveVehicle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VehicleServiceServer).ArchiveVehicle(ctx, req.(*ArchiveVehicleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VehicleService_ServiceDesc is the grpc.ServiceDesc for VehicleService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VehicleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "permitdrive.registry.VehicleService",
	HandlerType: (*VehicleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertVehicle",
			Handler:    _VehicleService_UpsertVehicle_Handler,
		},
		{
			MethodName: "GetVehicle",
			Handler:    _VehicleService_GetVehicle_Handler,
		},
		{
			MethodName: "ListVehicles",
			Handler:    _VehicleService_ListVehicles_Handler,
		},
		{
			MethodName: "ArchiveVehicle",
			Handler:    _VehicleService_ArchiveVehicle_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/registry/registry.proto",
}
