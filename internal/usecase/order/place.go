package usecase

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-deal-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (*domain.Order, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		uc.recordRejected("place", err)
		uc.recordPlaced("invalid")
		return nil, err
	}

	order := &domain.Order{
		ServiceID:  strings.TrimSpace(input.ServiceID),
		AuthorID:   strings.TrimSpace(input.AuthorID),
		CustomerID: strings.TrimSpace(input.CustomerID),
		Message:    input.Message,
		Status:     domain.StatusPending,
		CreatedAt:  uc.now(),
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		uc.logger().Error("failed to place order",
			"event", "order_place_failed",
			"service_id", order.ServiceID,
			"author_id", order.AuthorID,
			"customer_id", order.CustomerID,
			"error", err.Error(),
		)
		uc.recordPlaced("failed")
		return nil, err
	}

	uc.logger().Info("order placed",
		"event", "order_placed",
		"order_id", order.ID,
		"service_id", order.ServiceID,
		"author_id", order.AuthorID,
		"customer_id", order.CustomerID,
	)
	uc.recordPlaced("ok")
	uc.publishOrderEvent(ctx, "place", order)

	return order, nil
}

func validatePlaceOrderInput(input *orderdto.PlaceOrderInput) error {
	if input == nil {
		return domain.NewValidationError("order input is required")
	}
	var missing []string
	if strings.TrimSpace(input.ServiceID) == "" {
		missing = append(missing, "service_id")
	}
	if strings.TrimSpace(input.AuthorID) == "" {
		missing = append(missing, "author_id")
	}
	if strings.TrimSpace(input.CustomerID) == "" {
		missing = append(missing, "customer_id")
	}
	if len(missing) > 0 {
		return domain.NewValidationError("missing %s", strings.Join(missing, ", "))
	}
	if strings.TrimSpace(input.AuthorID) == strings.TrimSpace(input.CustomerID) {
		return domain.NewValidationError("author and customer must differ")
	}
	return nil
}
