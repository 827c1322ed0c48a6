package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusRefused   OrderStatus = "REFUSED"
	StatusConfirmed OrderStatus = "CONFIRMED"
)

// CanTransitionTo reports whether next is directly reachable from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRefused
	case StatusAccepted:
		return next == StatusConfirmed
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusRefused || s == StatusConfirmed
}

// PartyRole is the side of an order a caller acts for.
type PartyRole string

const (
	RoleNone     PartyRole = ""
	RoleAuthor   PartyRole = "author"
	RoleCustomer PartyRole = "customer"
)

func ParsePartyRole(raw string) (PartyRole, error) {
	switch PartyRole(raw) {
	case RoleAuthor:
		return RoleAuthor, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return RoleNone, NewValidationError("unknown party role %q", raw)
	}
}

type Order struct {
	ID                string
	ServiceID         string
	AuthorID          string
	CustomerID        string
	Status            OrderStatus
	AuthorConfirmed   bool
	CustomerConfirmed bool
	Message           string
	CreatedAt         time.Time
	AcceptedAt        *time.Time
	CompletedAt       *time.Time
}

// ConfirmedBy reports whether the given party has already confirmed the order.
func (o *Order) ConfirmedBy(role PartyRole) bool {
	switch role {
	case RoleAuthor:
		return o.AuthorConfirmed
	case RoleCustomer:
		return o.CustomerConfirmed
	default:
		return false
	}
}

// OrderTransition is a status change guarded by the status the caller observed.
type OrderTransition struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
	At      time.Time
}
