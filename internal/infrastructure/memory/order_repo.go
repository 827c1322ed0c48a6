package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/google/uuid"
)

// OrderRepository keeps orders in process memory. A single mutex gives the
// conditional updates the same all-or-nothing behaviour as the SQL store, which
// is enough for tests and single-instance local runs.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]domain.Order)}
}

func (r *OrderRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *OrderRepository) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.NewNotFoundError("order %s", orderID)
	}
	out := cloneOrder(order)
	return &out, nil
}

func (r *OrderRepository) UpdateOrderStatus(_ context.Context, tr domain.OrderTransition) (*domain.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[tr.OrderID]
	if !ok || order.Status != tr.From {
		return nil, false, nil
	}
	order.Status = tr.To
	if tr.To == domain.StatusAccepted {
		at := tr.At
		order.AcceptedAt = &at
	}
	r.orders[tr.OrderID] = order
	out := cloneOrder(order)
	return &out, true, nil
}

func (r *OrderRepository) ConfirmOrderParty(_ context.Context, orderID string, role domain.PartyRole, at time.Time) (*domain.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok || order.Status != domain.StatusAccepted {
		return nil, false, nil
	}
	switch role {
	case domain.RoleAuthor:
		order.AuthorConfirmed = true
	case domain.RoleCustomer:
		order.CustomerConfirmed = true
	default:
		return nil, false, domain.NewValidationError("unknown party role %q", role)
	}
	if order.AuthorConfirmed && order.CustomerConfirmed {
		order.Status = domain.StatusConfirmed
		completedAt := at
		order.CompletedAt = &completedAt
	}
	r.orders[orderID] = order
	out := cloneOrder(order)
	return &out, true, nil
}

func (r *OrderRepository) GetOrdersByAuthorID(_ context.Context, authorID string) ([]*domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.AuthorID == authorID }), nil
}

func (r *OrderRepository) GetOrdersByCustomerID(_ context.Context, customerID string) ([]*domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *OrderRepository) filter(keep func(domain.Order) bool) []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if !keep(order) {
			continue
		}
		out := cloneOrder(order)
		orders = append(orders, &out)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func cloneOrder(order domain.Order) domain.Order {
	if order.AcceptedAt != nil {
		at := *order.AcceptedAt
		order.AcceptedAt = &at
	}
	if order.CompletedAt != nil {
		at := *order.CompletedAt
		order.CompletedAt = &at
	}
	return order
}
