package domain

import (
	"context"
	"time"
)

// OrderRepository is the order store. Both update methods are conditional:
// they apply only while the stored status still matches and report false otherwise.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, tr OrderTransition) (*Order, bool, error)
	// ConfirmOrderParty sets the flag of role on an ACCEPTED order and, in the same
	// statement, moves it to CONFIRMED when the other flag is already set.
	ConfirmOrderParty(ctx context.Context, orderID string, role PartyRole, at time.Time) (*Order, bool, error)
	GetOrdersByAuthorID(ctx context.Context, authorID string) ([]*Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID string) ([]*Order, error)
}

// RoleResolver decides which side of an order a caller is on.
type RoleResolver interface {
	ResolveRole(ctx context.Context, order *Order, callerID string) (PartyRole, error)
}
