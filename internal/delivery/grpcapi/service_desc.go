package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	OrderServiceName = "deal.v1.OrderService"
	VoteServiceName  = "deal.v1.VoteService"
)

// Requests and responses travel as google.protobuf.Struct so the RPC layer
// in front of this service needs no generated stubs.
type structCall func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

type OrderServer interface {
	PlaceOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AcceptOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RefuseOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ConfirmOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOrdersForAuthor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOrdersForCustomer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetOrdersForUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type VoteServer interface {
	GetUserVote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Vote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RemoveVote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetScore(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ReconcileScore(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RegisterSubject(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var OrderServiceDesc = grpc.ServiceDesc{
	ServiceName: OrderServiceName,
	HandlerType: (*OrderServer)(nil),
	Methods: []grpc.MethodDesc{
		structMethod(OrderServiceName, "PlaceOrder", func(s any) structCall { return s.(OrderServer).PlaceOrder }),
		structMethod(OrderServiceName, "AcceptOrder", func(s any) structCall { return s.(OrderServer).AcceptOrder }),
		structMethod(OrderServiceName, "RefuseOrder", func(s any) structCall { return s.(OrderServer).RefuseOrder }),
		structMethod(OrderServiceName, "ConfirmOrder", func(s any) structCall { return s.(OrderServer).ConfirmOrder }),
		structMethod(OrderServiceName, "GetOrder", func(s any) structCall { return s.(OrderServer).GetOrder }),
		structMethod(OrderServiceName, "GetOrdersForAuthor", func(s any) structCall { return s.(OrderServer).GetOrdersForAuthor }),
		structMethod(OrderServiceName, "GetOrdersForCustomer", func(s any) structCall { return s.(OrderServer).GetOrdersForCustomer }),
		structMethod(OrderServiceName, "GetOrdersForUser", func(s any) structCall { return s.(OrderServer).GetOrdersForUser }),
	},
	Streams: []grpc.StreamDesc{},
}

var VoteServiceDesc = grpc.ServiceDesc{
	ServiceName: VoteServiceName,
	HandlerType: (*VoteServer)(nil),
	Methods: []grpc.MethodDesc{
		structMethod(VoteServiceName, "GetUserVote", func(s any) structCall { return s.(VoteServer).GetUserVote }),
		structMethod(VoteServiceName, "Vote", func(s any) structCall { return s.(VoteServer).Vote }),
		structMethod(VoteServiceName, "RemoveVote", func(s any) structCall { return s.(VoteServer).RemoveVote }),
		structMethod(VoteServiceName, "GetScore", func(s any) structCall { return s.(VoteServer).GetScore }),
		structMethod(VoteServiceName, "ReconcileScore", func(s any) structCall { return s.(VoteServer).ReconcileScore }),
		structMethod(VoteServiceName, "RegisterSubject", func(s any) structCall { return s.(VoteServer).RegisterSubject }),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterOrderServer(s grpc.ServiceRegistrar, srv OrderServer) {
	s.RegisterService(&OrderServiceDesc, srv)
}

func RegisterVoteServer(s grpc.ServiceRegistrar, srv VoteServer) {
	s.RegisterService(&VoteServiceDesc, srv)
}

func structMethod(service, method string, bind func(srv any) structCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			call := bind(srv)
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + service + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
