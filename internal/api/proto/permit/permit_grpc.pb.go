// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: internal/api/proto/permit/permit.proto

package permitpb

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
	PermitService_IssuePermit_FullMethodName         = "/permitdrive.permit.PermitService/IssuePermit"
	PermitService_RevokePermit_FullMethodName        = "/permitdrive.permit.PermitService/RevokePermit"
	PermitService_MarkPermitExpired_FullMethodName   = "/permitdrive.permit.PermitService/MarkPermitExpired"
	PermitService_SetPermitExpiration_FullMethodName = "/permitdrive.permit.PermitService/SetPermitExpiration"
	PermitService_ReplacePermit_FullMethodName       = "/permitdrive.permit.PermitService/ReplacePermit"
	PermitService_GetAvailability_FullMethodName     = "/permitdrive.permit.PermitService/GetAvailability"
	PermitService_GetPermit_FullMethodName           = "/permitdrive.permit.PermitService/GetPermit"
	PermitService_ListPermits_FullMethodName         = "/permitdrive.permit.PermitService/ListPermits"
)

// PermitServiceClient is the client API for PermitService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PermitServiceClient interface {
	IssuePermit(ctx context.Context, in *IssuePermitRequest, opts ...grpc.CallOption) (*IssuePermitResponse, error)
	RevokePermit(ctx context.Context, in *RevokePermitRequest, opts ...grpc.CallOption) (*RevokePermitResponse, error)
	MarkPermitExpired(ctx context.Context, in *MarkPermitExpiredRequest, opts ...grpc.CallOption) (*MarkPermitExpiredResponse, error)
	SetPermitExpiration(ctx context.Context, in *SetPermitExpirationRequest, opts ...grpc.CallOption) (*SetPermitExpirationResponse, error)
	ReplacePermit(ctx context.Context, in *ReplacePermitRequest, opts ...grpc.CallOption) (*ReplacePermitResponse, error)
	GetAvailability(ctx context.Context, in *GetAvailabilityRequest, opts ...grpc.CallOption) (*GetAvailabilityResponse, error)
	GetPermit(ctx context.Context, in *GetPermitRequest, opts ...grpc.CallOption) (*GetPermitResponse, error)
	ListPermits(ctx context.Context, in *ListPermitsRequest, opts ...grpc.CallOption) (*ListPermitsResponse, error)
}

type permitServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPermitServiceClient(cc grpc.ClientConnInterface) PermitServiceClient {
	return &permitServiceClient{cc}
}

func (c *permitServiceClient) IssuePermit(ctx context.Context, in *IssuePermitRequest, opts ...grpc.CallOption) (*IssuePermitResponse, error) {
	out := new(IssuePermitResponse)
	err := c.cc.Invoke(ctx, PermitService_IssuePermit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) RevokePermit(ctx context.Context, in *RevokePermitRequest, opts ...grpc.CallOption) (*RevokePermitResponse, error) {
	out := new(RevokePermitResponse)
	err := c.cc.Invoke(ctx, PermitService_RevokePermit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) MarkPermitExpired(ctx context.Context, in *MarkPermitExpiredRequest, opts ...grpc.CallOption) (*MarkPermitExpiredResponse, error) {
	out := new(MarkPermitExpiredResponse)
	err := c.cc.Invoke(ctx, PermitService_MarkPermitExpired_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) SetPermitExpiration(ctx context.Context, in *SetPermitExpirationRequest, opts ...grpc.CallOption) (*SetPermitExpirationResponse, error) {
	out := new(SetPermitExpirationResponse)
	err := c.cc.Invoke(ctx, PermitService_SetPermitExpiration_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) ReplacePermit(ctx context.Context, in *ReplacePermitRequest, opts ...grpc.CallOption) (*ReplacePermitResponse, error) {
	out := new(ReplacePermitResponse)
	err := c.cc.Invoke(ctx, PermitService_ReplacePermit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) GetAvailability(ctx context.Context, in *GetAvailabilityRequest, opts ...grpc.CallOption) (*GetAvailabilityResponse, error) {
	out := new(GetAvailabilityResponse)
	err := c.cc.Invoke(ctx, PermitService_GetAvailability_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) GetPermit(ctx context.Context, in *GetPermitRequest, opts ...grpc.CallOption) (*GetPermitResponse, error) {
	out := new(GetPermitResponse)
	err := c.cc.Invoke(ctx, PermitService_GetPermit_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permitServiceClient) ListPermits(ctx context.Context, in *ListPermitsRequest, opts ...grpc.CallOption) (*ListPermitsResponse, error) {
	out := new(ListPermitsResponse)
	err := c.cc.Invoke(ctx, PermitService_ListPermits_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PermitServiceServer is the server API for PermitService service.
// All implementations must embed UnimplementedPermitServiceServer
// for forward compatibility
type PermitServiceServer interface {
	IssuePermit(context.Context, *IssuePermitRequest) (*IssuePermitResponse, error)
	RevokePermit(context.Context, *RevokePermitRequest) (*RevokePermitResponse, error)
	MarkPermitExpired(context.Context, *MarkPermitExpiredRequest) (*MarkPermitExpiredResponse, error)
	SetPermitExpiration(context.Context, *SetPermitExpirationRequest) (*SetPermitExpirationResponse, error)
	ReplacePermit(context.Context, *ReplacePermitRequest) (*ReplacePermitResponse, error)
	GetAvailability(context.Context, *GetAvailabilityRequest) (*GetAvailabilityResponse, error)
	GetPermit(context.Context, *GetPermitRequest) (*GetPermitResponse, error)
	ListPermits(context.Context, *ListPermitsRequest) (*ListPermitsResponse, error)
	mustEmbedUnimplementedPermitServiceServer()
}

// UnimplementedPermitServiceServer must be embedded to have forward compatible implementations.
type UnimplementedPermitServiceServer struct {
}

func (UnimplementedPermitServiceServer) IssuePermit(context.Context, *IssuePermitRequest) (*IssuePermitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssuePermit not implemented")
}
func (UnimplementedPermitServiceServer) RevokePermit(context.Context, *RevokePermitRequest) (*RevokePermitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevokePermit not implemented")
}
func (UnimplementedPermitServiceServer) MarkPermitExpired(context.Context, *MarkPermitExpiredRequest) (*MarkPermitExpiredResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkPermitExpired not implemented")
}
func (UnimplementedPermitServiceServer) SetPermitExpiration(context.Context, *SetPermitExpirationRequest) (*SetPermitExpirationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetPermitExpiration not implemented")
}
func (UnimplementedPermitServiceServer) ReplacePermit(context.Context, *ReplacePermitRequest) (*ReplacePermitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReplacePermit not implemented")
}
func (UnimplementedPermitServiceServer) GetAvailability(context.Context, *GetAvailabilityRequest) (*GetAvailabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAvailability not implemented")
}
func (UnimplementedPermitServiceServer) GetPermit(context.Context, *GetPermitRequest) (*GetPermitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPermit not implemented")
}
func (UnimplementedPermitServiceServer) ListPermits(context.Context, *ListPermitsRequest) (*ListPermitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPermits not implemented")
}
func (UnimplementedPermitServiceServer) mustEmbedUnimplementedPermitServiceServer() {}

// UnsafePermitServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PermitServiceServer will
// result in compilation errors.
type UnsafePermitServiceServer interface {
	mustEmbedUnimplementedPermitServiceServer()
}

func RegisterPermitServiceServer(s grpc.ServiceRegistrar, srv PermitServiceServer) {
	s.RegisterService(&PermitService_ServiceDesc, srv)
}

func _PermitService_IssuePermit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IssuePermitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).IssuePermit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_IssuePermit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).IssuePermit(ctx, req.(*IssuePermitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_RevokePermit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RevokePermitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).RevokePermit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_RevokePermit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).RevokePermit(ctx, req.(*RevokePermitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_MarkPermitExpired_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkPermitExpiredRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).MarkPermitExpired(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_MarkPermitExpired_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).MarkPermitExpired(ctx, req.(*MarkPermitExpiredRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_SetPermitExpiration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetPermitExpirationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).SetPermitExpiration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_SetPermitExpiration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).SetPermitExpiration(ctx, req.(*SetPermitExpirationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_ReplacePermit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReplacePermitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).ReplacePermit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_ReplacePermit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).ReplacePermit(ctx, req.(*ReplacePermitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_GetAvailability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAvailabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).GetAvailability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_GetAvailability_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).GetAvailability(ctx, req.(*GetAvailabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_GetPermit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPermitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).GetPermit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_GetPermit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).GetPermit(ctx, req.(*GetPermitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PermitService_ListPermits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPermitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermitServiceServer).ListPermits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PermitService_ListPermits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermitServiceServer).ListPermits(ctx, req.(*ListPermitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PermitService_ServiceDesc is the grpc.ServiceDesc for PermitService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PermitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "permitdrive.permit.PermitService",
	HandlerType: (*PermitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IssuePermit",
			Handler:    _PermitService_IssuePermit_Handler,
		},
		{
			MethodName: "RevokePermit",
			Handler:    _PermitService_RevokePermit_Handler,
		},
		{
			MethodName: "MarkPermitExpired",
			Handler:    _PermitService_MarkPermitExpired_Handler,
		},
		{
			MethodName: "SetPermitExpiration",
			Handler:    _PermitService_SetPermitExpiration_Handler,
		},
		{
			MethodName: "ReplacePermit",
			Handler:    _PermitService_ReplacePermit_Handler,
		},
		{
			MethodName: "GetAvailability",
			Handler:    _PermitService_GetAvailability_Handler,
		},
		{
			MethodName: "GetPermit",
			Handler:    _PermitService_GetPermit_Handler,
		},
		{
			MethodName: "ListPermits",
			Handler:    _PermitService_ListPermits_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/permit/permit.proto",
}
