package grpcapi

import (
	"context"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-deal-service/internal/usecase/dto/order"
	orderusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/order"
	"google.golang.org/protobuf/types/known/structpb"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		uc: uc,
	}
}

// PlaceOrder takes customer_id from the request and falls back to the caller.
func (h *OrderHandler) PlaceOrder(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	input := &orderdto.PlaceOrderInput{
		ServiceID:  stringField(r, "service_id"),
		AuthorID:   stringField(r, "author_id"),
		CustomerID: stringField(r, "customer_id"),
		Message:    r.GetFields()["message"].GetStringValue(),
	}
	if input.CustomerID == "" {
		if caller, err := callerID(ctx); err == nil {
			input.CustomerID = caller
		}
	}

	order, err := h.uc.PlaceOrder(ctx, input)
	if err != nil {
		return nil, toStatus(err)
	}
	return orderResponse(order)
}

func (h *OrderHandler) AcceptOrder(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	order, err := h.uc.AcceptOrder(ctx, stringField(r, "order_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return orderResponse(order)
}

func (h *OrderHandler) RefuseOrder(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	order, err := h.uc.RefuseOrder(ctx, stringField(r, "order_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return orderResponse(order)
}

func (h *OrderHandler) ConfirmOrder(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	role, err := domain.ParsePartyRole(stringField(r, "role"))
	if err != nil {
		return nil, toStatus(err)
	}

	order, err := h.uc.ConfirmOrder(ctx, stringField(r, "order_id"), caller, role)
	if err != nil {
		return nil, toStatus(err)
	}
	return orderResponse(order)
}

func (h *OrderHandler) GetOrder(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	order, err := h.uc.GetOrderByID(ctx, stringField(r, "order_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return orderResponse(order)
}

func (h *OrderHandler) GetOrdersForAuthor(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	orders, err := h.uc.GetOrdersForAuthor(ctx, stringField(r, "author_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return ordersResponse(orders)
}

func (h *OrderHandler) GetOrdersForCustomer(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	orders, err := h.uc.GetOrdersForCustomer(ctx, stringField(r, "customer_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return ordersResponse(orders)
}

func (h *OrderHandler) GetOrdersForUser(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	userID := stringField(r, "user_id")
	if userID == "" {
		caller, err := callerID(ctx)
		if err != nil {
			return nil, err
		}
		userID = caller
	}
	orders, err := h.uc.GetOrdersForUser(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return ordersResponse(orders)
}
