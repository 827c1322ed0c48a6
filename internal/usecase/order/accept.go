package usecase

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

func (uc *DefaultOrderUsecase) AcceptOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.moveFromPending(ctx, orderID, "accept", domain.StatusAccepted)
}

// RefuseOrder closes a pending order for good.
func (uc *DefaultOrderUsecase) RefuseOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.moveFromPending(ctx, orderID, "refuse", domain.StatusRefused)
}

func (uc *DefaultOrderUsecase) moveFromPending(ctx context.Context, orderID, operation string, next domain.OrderStatus) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		err := domain.NewValidationError("order id is required")
		uc.recordRejected(operation, err)
		return nil, err
	}

	op := &OrderOperation{
		OrderID:   orderID,
		Operation: operation,
		OldStatus: domain.StatusPending,
		NewStatus: next,
		CreatedAt: uc.now(),
	}

	order, err := uc.ProcessOrderOperation(ctx, op)
	if err != nil {
		uc.logger().Warn("order operation rejected",
			"event", "order_"+operation+"_rejected",
			"order_id", orderID,
			"error", err.Error(),
		)
		uc.recordRejected(operation, err)
		return nil, err
	}
	return order, nil
}
