package grpcapi

import (
	"context"
	"net"
	"testing"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/participants"
	orderusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/order"
	voteusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/vote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	orderUc := orderusecase.NewDefaultOrderUsecase(
		memory.NewOrderRepository(),
		participants.NewOrderParticipantResolver(),
		nil, nil, nil,
	)
	subjects := memory.NewSubjectRepository(domain.Subject{ID: "post-1", Kind: domain.SubjectPost})
	voteUc := voteusecase.NewDefaultVoteUsecase(
		memory.NewVoteRepository(),
		subjects, subjects,
		voteusecase.TogglePolicy{},
		nil, nil, nil,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(nil)))
	RegisterOrderServer(srv, NewOrderHandler(orderUc))
	RegisterVoteServer(srv, NewVoteHandler(voteUc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func call(t *testing.T, conn *grpc.ClientConn, userID, method string, fields map[string]any) (*structpb.Struct, error) {
	t.Helper()
	req, err := structpb.NewStruct(fields)
	require.NoError(t, err)

	ctx := context.Background()
	if userID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, CallerMetadataKey, userID)
	}
	resp := new(structpb.Struct)
	err = conn.Invoke(ctx, method, req, resp)
	return resp, err
}

func orderStatus(resp *structpb.Struct) string {
	return resp.GetFields()["order"].GetStructValue().GetFields()["status"].GetStringValue()
}

func TestOrderServiceLifecycle(t *testing.T) {
	conn := startServer(t)

	resp, err := call(t, conn, "customer-1", "/deal.v1.OrderService/PlaceOrder", map[string]any{
		"service_id": "svc-1",
		"author_id":  "author-1",
		"message":    "logo please",
	})
	require.NoError(t, err)
	order := resp.GetFields()["order"].GetStructValue().GetFields()
	orderID := order["order_id"].GetStringValue()
	require.NotEmpty(t, orderID)
	assert.Equal(t, "customer-1", order["customer_id"].GetStringValue())
	assert.Equal(t, "PENDING", order["status"].GetStringValue())

	resp, err = call(t, conn, "author-1", "/deal.v1.OrderService/AcceptOrder", map[string]any{"order_id": orderID})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", orderStatus(resp))

	_, err = call(t, conn, "author-1", "/deal.v1.OrderService/AcceptOrder", map[string]any{"order_id": orderID})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = call(t, conn, "customer-1", "/deal.v1.OrderService/ConfirmOrder", map[string]any{"order_id": orderID, "role": "author"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	resp, err = call(t, conn, "author-1", "/deal.v1.OrderService/ConfirmOrder", map[string]any{"order_id": orderID, "role": "author"})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", orderStatus(resp))

	resp, err = call(t, conn, "customer-1", "/deal.v1.OrderService/ConfirmOrder", map[string]any{"order_id": orderID, "role": "customer"})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", orderStatus(resp))
	completed := resp.GetFields()["order"].GetStructValue().GetFields()["completed_at"].GetStringValue()
	assert.NotEmpty(t, completed)

	resp, err = call(t, conn, "author-1", "/deal.v1.OrderService/GetOrdersForUser", map[string]any{})
	require.NoError(t, err)
	assert.Len(t, resp.GetFields()["orders"].GetListValue().GetValues(), 1)
}

func TestOrderServiceErrors(t *testing.T) {
	conn := startServer(t)

	tests := []struct {
		name   string
		user   string
		method string
		fields map[string]any
		code   codes.Code
	}{
		{
			name:   "same author and customer",
			user:   "u-1",
			method: "/deal.v1.OrderService/PlaceOrder",
			fields: map[string]any{"service_id": "svc", "author_id": "u-1", "customer_id": "u-1"},
			code:   codes.InvalidArgument,
		},
		{
			name:   "unknown order",
			user:   "u-1",
			method: "/deal.v1.OrderService/GetOrder",
			fields: map[string]any{"order_id": "missing"},
			code:   codes.NotFound,
		},
		{
			name:   "confirm without caller",
			method: "/deal.v1.OrderService/ConfirmOrder",
			fields: map[string]any{"order_id": "missing", "role": "author"},
			code:   codes.Unauthenticated,
		},
		{
			name:   "confirm with unknown role",
			user:   "u-1",
			method: "/deal.v1.OrderService/ConfirmOrder",
			fields: map[string]any{"order_id": "missing", "role": "admin"},
			code:   codes.InvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, conn, tt.user, tt.method, tt.fields)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestVoteService(t *testing.T) {
	conn := startServer(t)

	resp, err := call(t, conn, "u-1", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1", "is_upvote": true})
	require.NoError(t, err)
	assert.Equal(t, "created", resp.GetFields()["action"].GetStringValue())

	_, err = call(t, conn, "u-2", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1", "is_upvote": false})
	require.NoError(t, err)

	resp, err = call(t, conn, "u-2", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1", "is_upvote": true})
	require.NoError(t, err)
	assert.Equal(t, "flipped", resp.GetFields()["action"].GetStringValue())

	resp, err = call(t, conn, "", "/deal.v1.VoteService/GetScore", map[string]any{"subject_id": "post-1"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), resp.GetFields()["score"].GetNumberValue())

	resp, err = call(t, conn, "u-1", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1", "is_upvote": true})
	require.NoError(t, err)
	assert.Equal(t, "retracted", resp.GetFields()["action"].GetStringValue())

	resp, err = call(t, conn, "u-1", "/deal.v1.VoteService/GetUserVote", map[string]any{"subject_id": "post-1"})
	require.NoError(t, err)
	assert.False(t, resp.GetFields()["has_vote"].GetBoolValue())

	_, err = call(t, conn, "u-1", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-404", "is_upvote": true})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = call(t, conn, "u-1", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = call(t, conn, "", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "post-1", "is_upvote": true})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRegisterSubjectThenVote(t *testing.T) {
	conn := startServer(t)

	_, err := call(t, conn, "", "/deal.v1.VoteService/RegisterSubject", map[string]any{"subject_id": "svc-9", "kind": "service"})
	require.NoError(t, err)

	_, err = call(t, conn, "u-1", "/deal.v1.VoteService/Vote", map[string]any{"subject_id": "svc-9", "is_upvote": false})
	require.NoError(t, err)

	resp, err := call(t, conn, "", "/deal.v1.VoteService/ReconcileScore", map[string]any{"subject_id": "svc-9"})
	require.NoError(t, err)
	assert.Equal(t, float64(-1), resp.GetFields()["score"].GetNumberValue())
	assert.Equal(t, float64(1), resp.GetFields()["downvotes"].GetNumberValue())
}
