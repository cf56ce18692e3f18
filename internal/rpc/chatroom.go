package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// El servicio chatroom.Chatroom usa solo tipos well-known de protobuf, así el
// descriptor se escribe a mano y no hace falta generar stubs.
const (
	serviceName             = "chatroom.Chatroom"
	getUsernameFullMethod   = "/" + serviceName + "/GetUsername"
	createMessageFullMethod = "/" + serviceName + "/CreateMessage"
	allMessagesFullMethod   = "/" + serviceName + "/AllMessages"
)

// ChatroomServer es la API del lado servidor de chatroom.Chatroom.
type ChatroomServer interface {
	GetUsername(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	CreateMessage(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	AllMessages(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterChatroomServer registra srv en un *grpc.Server.
func RegisterChatroomServer(s grpc.ServiceRegistrar, srv ChatroomServer) {
	s.RegisterService(&chatroomServiceDesc, srv)
}

var chatroomServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ChatroomServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUsername", Handler: getUsernameHandler},
		{MethodName: "CreateMessage", Handler: createMessageHandler},
		{MethodName: "AllMessages", Handler: allMessagesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chatroom.proto",
}

func getUsernameHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatroomServer).GetUsername(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getUsernameFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatroomServer).GetUsername(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func createMessageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatroomServer).CreateMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createMessageFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatroomServer).CreateMessage(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func allMessagesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatroomServer).AllMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: allMessagesFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatroomServer).AllMessages(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ChatroomClient es el lado cliente de chatroom.Chatroom.
type ChatroomClient struct {
	cc grpc.ClientConnInterface
}

func NewChatroomClient(cc grpc.ClientConnInterface) *ChatroomClient {
	return &ChatroomClient{cc: cc}
}

func (c *ChatroomClient) GetUsername(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, getUsernameFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *ChatroomClient) CreateMessage(ctx context.Context, author, text string, opts ...grpc.CallOption) error {
	in, err := structpb.NewStruct(map[string]interface{}{
		"author": author,
		"text":   text,
	})
	if err != nil {
		return err
	}
	return c.cc.Invoke(ctx, createMessageFullMethod, in, new(emptypb.Empty), opts...)
}

func (c *ChatroomClient) AllMessages(ctx context.Context, opts ...grpc.CallOption) ([]Entry, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, allMessagesFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return entriesFromStruct(out)
}
