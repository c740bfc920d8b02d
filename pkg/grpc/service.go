package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages are google.protobuf.Struct values carrying the same JSON documents
// the REST API serves, so no generated message types are needed.

const (
	ThermoNetServiceName = "thermonet.v1.ThermoNetService"

	ThermoNetService_SyncReadings_FullMethodName      = "/thermonet.v1.ThermoNetService/SyncReadings"
	ThermoNetService_QueryTemperatures_FullMethodName = "/thermonet.v1.ThermoNetService/QueryTemperatures"
	ThermoNetService_GetStats_FullMethodName          = "/thermonet.v1.ThermoNetService/GetStats"
	ThermoNetService_GetDevice_FullMethodName         = "/thermonet.v1.ThermoNetService/GetDevice"
	ThermoNetService_GetTile_FullMethodName           = "/thermonet.v1.ThermoNetService/GetTile"
)

type ThermoNetServiceClient interface {
	SyncReadings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	QueryTemperatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDevice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type thermoNetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewThermoNetServiceClient(cc grpc.ClientConnInterface) ThermoNetServiceClient {
	return &thermoNetServiceClient{cc}
}

func (c *thermoNetServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *thermoNetServiceClient) SyncReadings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ThermoNetService_SyncReadings_FullMethodName, in, opts)
}

func (c *thermoNetServiceClient) QueryTemperatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ThermoNetService_QueryTemperatures_FullMethodName, in, opts)
}

func (c *thermoNetServiceClient) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ThermoNetService_GetStats_FullMethodName, in, opts)
}

func (c *thermoNetServiceClient) GetDevice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ThermoNetService_GetDevice_FullMethodName, in, opts)
}

func (c *thermoNetServiceClient) GetTile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ThermoNetService_GetTile_FullMethodName, in, opts)
}

type ThermoNetServiceServer interface {
	SyncReadings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QueryTemperatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetDevice(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetTile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedThermoNetServiceServer()
}

type UnimplementedThermoNetServiceServer struct{}

func (UnimplementedThermoNetServiceServer) SyncReadings(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncReadings not implemented")
}
func (UnimplementedThermoNetServiceServer) QueryTemperatures(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryTemperatures not implemented")
}
func (UnimplementedThermoNetServiceServer) GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedThermoNetServiceServer) GetDevice(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDevice not implemented")
}
func (UnimplementedThermoNetServiceServer) GetTile(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTile not implemented")
}
func (UnimplementedThermoNetServiceServer) mustEmbedUnimplementedThermoNetServiceServer() {}

func RegisterThermoNetServiceServer(s grpc.ServiceRegistrar, srv ThermoNetServiceServer) {
	s.RegisterService(&ThermoNetService_ServiceDesc, srv)
}

// unaryHandler adapts one server method to the grpc.MethodDesc handler shape.
func unaryHandler[Req any](
	fullMethod string,
	newReq func() *Req,
	call func(ThermoNetServiceServer, context.Context, *Req) (*structpb.Struct, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ThermoNetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ThermoNetServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newStruct() *structpb.Struct { return new(structpb.Struct) }
func newEmpty() *emptypb.Empty    { return new(emptypb.Empty) }

var ThermoNetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ThermoNetServiceName,
	HandlerType: (*ThermoNetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SyncReadings",
			Handler:    unaryHandler(ThermoNetService_SyncReadings_FullMethodName, newStruct, ThermoNetServiceServer.SyncReadings),
		},
		{
			MethodName: "QueryTemperatures",
			Handler:    unaryHandler(ThermoNetService_QueryTemperatures_FullMethodName, newStruct, ThermoNetServiceServer.QueryTemperatures),
		},
		{
			MethodName: "GetStats",
			Handler:    unaryHandler(ThermoNetService_GetStats_FullMethodName, newEmpty, ThermoNetServiceServer.GetStats),
		},
		{
			MethodName: "GetDevice",
			Handler:    unaryHandler(ThermoNetService_GetDevice_FullMethodName, newEmpty, ThermoNetServiceServer.GetDevice),
		},
		{
			MethodName: "GetTile",
			Handler:    unaryHandler(ThermoNetService_GetTile_FullMethodName, newStruct, ThermoNetServiceServer.GetTile),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "thermonet/v1/thermonet.proto",
}
