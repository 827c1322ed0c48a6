package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

// OrderOperation describes a status change requested by a caller.
type OrderOperation struct {
	OrderID   string             `json:"order_id"`
	Operation string             `json:"operation"` // "accept", "refuse"
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
	CreatedAt time.Time          `json:"created_at"`
}

// ProcessOrderOperation applies op as one conditional update. The store only
// moves the order when it is still in OldStatus, so of two racing callers
// exactly one wins and the other gets ErrInvalidTransition.
func (uc *DefaultOrderUsecase) ProcessOrderOperation(ctx context.Context, op *OrderOperation) (*domain.Order, error) {
	if !op.OldStatus.CanTransitionTo(op.NewStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, op.OldStatus, op.NewStatus)
	}

	updated, applied, err := uc.OrderRepo.UpdateOrderStatus(ctx, domain.OrderTransition{
		OrderID: op.OrderID,
		From:    op.OldStatus,
		To:      op.NewStatus,
		At:      op.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, uc.explainRejectedOperation(ctx, op.OrderID, op.Operation)
	}

	uc.logger().Info("order status changed",
		"event", "order_"+op.Operation,
		"order_id", updated.ID,
		"old_status", string(op.OldStatus),
		"new_status", string(updated.Status),
	)
	uc.recordTransition(op.OldStatus, updated.Status)
	uc.publishOrderEvent(ctx, op.Operation, updated)

	return updated, nil
}

// explainRejectedOperation reads the order back to tell a missing order from
// one that has moved on.
func (uc *DefaultOrderUsecase) explainRejectedOperation(ctx context.Context, orderID, operation string) error {
	current, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: cannot %s order %s in status %s",
		domain.ErrInvalidTransition, operation, orderID, current.Status)
}

func (uc *DefaultOrderUsecase) publishOrderEvent(ctx context.Context, operation string, order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	event := domain.OrderEvent{
		OrderID:    order.ID,
		ServiceID:  order.ServiceID,
		AuthorID:   order.AuthorID,
		CustomerID: order.CustomerID,
		Operation:  operation,
		Status:     order.Status,
		OccurredAt: uc.now(),
	}
	if err := uc.Publisher.PublishOrderEvent(ctx, event); err != nil {
		uc.logger().Error("failed to publish order event",
			"event", "order_event_publish_failed",
			"order_id", order.ID,
			"operation", operation,
			"error", err.Error(),
		)
	}
}
