package rpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"chatroom/internal/domain"
	"chatroom/internal/service"
)

// Entry es una entrada del historial tal como viaja por gRPC.
type Entry struct {
	Author    string
	Text      string
	Timestamp time.Time
}

// ChatServer traduce las llamadas gRPC al core del chat.
type ChatServer struct {
	logger *zap.Logger
	chat   service.ChatCore
}

// NewChatServer crea el servidor gRPC sobre el core dado.
func NewChatServer(logger *zap.Logger, chat service.ChatCore) *ChatServer {
	return &ChatServer{logger: logger, chat: chat}
}

// NewServer arma un *grpc.Server con el servicio registrado y logging por llamada.
func NewServer(logger *zap.Logger, chat service.ChatCore, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(zapUnaryInterceptor(logger)))
	s := grpc.NewServer(opts...)
	RegisterChatroomServer(s, NewChatServer(logger, chat))
	return s
}

// GetUsername asigna un nombre y lo anuncia, igual que la mutación GraphQL.
func (s *ChatServer) GetUsername(_ context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	name, err := s.chat.AnnounceSession()
	if err != nil {
		return nil, status.Error(codes.Internal, "could not assign username")
	}
	return wrapperspb.String(name), nil
}

func (s *ChatServer) CreateMessage(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	fields := req.GetFields()
	author := fields["author"].GetStringValue()
	if strings.TrimSpace(author) == "" {
		return nil, status.Error(codes.InvalidArgument, "author is required")
	}
	s.chat.PostMessage(domain.Message{
		Author: author,
		Text:   fields["text"].GetStringValue(),
	})
	return &emptypb.Empty{}, nil
}

func (s *ChatServer) AllMessages(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	items := lo.Map(s.chat.Messages(), func(e domain.ChatLogEntry, _ int) interface{} {
		return map[string]interface{}{
			"author":    e.Author,
			"text":      e.Text,
			"timestamp": e.Timestamp.Format(time.RFC3339Nano),
		}
	})
	out, err := structpb.NewStruct(map[string]interface{}{"messages": items})
	if err != nil {
		s.logger.Error("encode messages failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "could not encode messages")
	}
	return out, nil
}

func entriesFromStruct(s *structpb.Struct) ([]Entry, error) {
	values := s.GetFields()["messages"].GetListValue().GetValues()
	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		fields := v.GetStructValue().GetFields()
		ts, err := time.Parse(time.RFC3339Nano, fields["timestamp"].GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("entry %d timestamp: %w", i, err)
		}
		entries = append(entries, Entry{
			Author:    fields["author"].GetStringValue(),
			Text:      fields["text"].GetStringValue(),
			Timestamp: ts,
		})
	}
	return entries, nil
}

// zapUnaryInterceptor es el equivalente gRPC del middleware de logging HTTP.
func zapUnaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("rpc",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}
