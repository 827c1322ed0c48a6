package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

// ConfirmOrder records that one party considers the accepted order done. The
// order completes when both parties have confirmed.
func (uc *DefaultOrderUsecase) ConfirmOrder(ctx context.Context, orderID, callerID string, role domain.PartyRole) (*domain.Order, error) {
	order, err := uc.confirmOrder(ctx, orderID, callerID, role)
	if err != nil {
		uc.logger().Warn("order confirmation rejected",
			"event", "order_confirm_rejected",
			"order_id", orderID,
			"caller_id", callerID,
			"role", string(role),
			"error", err.Error(),
		)
		uc.recordRejected("confirm", err)
		return nil, err
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) confirmOrder(ctx context.Context, orderID, callerID string, role domain.PartyRole) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(callerID) == "" {
		return nil, domain.NewValidationError("order id and caller id are required")
	}
	if role != domain.RoleAuthor && role != domain.RoleCustomer {
		return nil, domain.NewValidationError("unknown party role %q", role)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.RoleResolver.ResolveRole(ctx, order, callerID)
	if err != nil {
		return nil, err
	}
	if resolved != role {
		return nil, fmt.Errorf("%w: caller %s is not the %s of order %s",
			domain.ErrUnauthorized, callerID, role, orderID)
	}

	switch {
	case order.Status == domain.StatusConfirmed:
		// both flags are set on a confirmed order, so this party already confirmed
		return order, nil
	case order.Status != domain.StatusAccepted:
		return nil, fmt.Errorf("%w: cannot confirm order %s in status %s",
			domain.ErrInvalidTransition, orderID, order.Status)
	case order.ConfirmedBy(role):
		return order, nil
	}

	updated, applied, err := uc.OrderRepo.ConfirmOrderParty(ctx, orderID, role, uc.now())
	if err != nil {
		return nil, err
	}
	if !applied {
		current, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if current.Status == domain.StatusConfirmed {
			return current, nil
		}
		return nil, fmt.Errorf("%w: cannot confirm order %s in status %s",
			domain.ErrInvalidTransition, orderID, current.Status)
	}

	uc.recordConfirmation(role)
	uc.logger().Info("order confirmed by party",
		"event", "order_party_confirmed",
		"order_id", orderID,
		"role", string(role),
		"author_confirmed", updated.AuthorConfirmed,
		"customer_confirmed", updated.CustomerConfirmed,
	)

	// The update only matches ACCEPTED rows, so a CONFIRMED result means this
	// call set the second flag.
	if updated.Status == domain.StatusConfirmed {
		uc.logger().Info("order completed",
			"event", "order_completed",
			"order_id", orderID,
		)
		uc.recordTransition(domain.StatusAccepted, domain.StatusConfirmed)
		uc.recordCompletion(updated)
		uc.publishOrderEvent(ctx, "complete", updated)
		return updated, nil
	}

	uc.publishOrderEvent(ctx, "confirm", updated)
	return updated, nil
}
