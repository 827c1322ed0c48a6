package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.NewValidationError("order id is required")
	}
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersForAuthor(ctx context.Context, authorID string) ([]*domain.Order, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, domain.NewValidationError("author id is required")
	}
	return uc.OrderRepo.GetOrdersByAuthorID(ctx, authorID)
}

func (uc *DefaultOrderUsecase) GetOrdersForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.NewValidationError("customer id is required")
	}
	return uc.OrderRepo.GetOrdersByCustomerID(ctx, customerID)
}

// GetOrdersForUser returns every order the user takes part in, newest first.
// The two lookups are independent reads and may reflect slightly different moments.
func (uc *DefaultOrderUsecase) GetOrdersForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	asAuthor, err := uc.GetOrdersForAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	asCustomer, err := uc.GetOrdersForCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(asAuthor)+len(asCustomer))
	orders := make([]*domain.Order, 0, len(asAuthor)+len(asCustomer))
	for _, group := range [][]*domain.Order{asAuthor, asCustomer} {
		for _, order := range group {
			if _, ok := seen[order.ID]; ok {
				continue
			}
			seen[order.ID] = struct{}{}
			orders = append(orders, order)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
