package grpcapi

import (
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func stringField(req *structpb.Struct, name string) string {
	return strings.TrimSpace(req.GetFields()[name].GetStringValue())
}

func boolField(req *structpb.Struct, name string) (bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return false, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, status.Errorf(codes.InvalidArgument, "%s must be a bool", name)
	}
	return b.BoolValue, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func orderFields(order *domain.Order) map[string]any {
	fields := map[string]any{
		"order_id":           order.ID,
		"service_id":         order.ServiceID,
		"author_id":          order.AuthorID,
		"customer_id":        order.CustomerID,
		"status":             string(order.Status),
		"author_confirmed":   order.AuthorConfirmed,
		"customer_confirmed": order.CustomerConfirmed,
		"message":            order.Message,
		"created_at":         formatTime(order.CreatedAt),
	}
	if order.AcceptedAt != nil {
		fields["accepted_at"] = formatTime(*order.AcceptedAt)
	}
	if order.CompletedAt != nil {
		fields["completed_at"] = formatTime(*order.CompletedAt)
	}
	return fields
}

func orderResponse(order *domain.Order) (*structpb.Struct, error) {
	return newStruct(map[string]any{"order": orderFields(order)})
}

func ordersResponse(orders []*domain.Order) (*structpb.Struct, error) {
	list := make([]any, 0, len(orders))
	for _, order := range orders {
		list = append(list, orderFields(order))
	}
	return newStruct(map[string]any{"orders": list})
}

func voteFields(vote *domain.Vote) map[string]any {
	return map[string]any{
		"subject_id": vote.SubjectID,
		"user_id":    vote.UserID,
		"is_upvote":  vote.IsUpvote,
		"created_at": formatTime(vote.CreatedAt),
		"updated_at": formatTime(vote.UpdatedAt),
	}
}

func voteChangeResponse(change domain.VoteChange) (*structpb.Struct, error) {
	fields := map[string]any{"action": string(change.Action)}
	if change.Current != nil {
		fields["vote"] = voteFields(change.Current)
	}
	return newStruct(fields)
}

func scoreResponse(score domain.Score) (*structpb.Struct, error) {
	return newStruct(map[string]any{
		"subject_id": score.SubjectID,
		"upvotes":    float64(score.Upvotes),
		"downvotes":  float64(score.Downvotes),
		"score":      float64(score.Value()),
	})
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return s, nil
}
