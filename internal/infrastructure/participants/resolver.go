package participants

import (
	"context"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
)

// OrderParticipantResolver maps an authenticated user id onto the side of the
// order recorded at placement. Other schemes (delegated accounts, organization
// members acting for an author) plug in behind domain.RoleResolver.
type OrderParticipantResolver struct{}

func NewOrderParticipantResolver() *OrderParticipantResolver {
	return &OrderParticipantResolver{}
}

func (OrderParticipantResolver) ResolveRole(_ context.Context, order *domain.Order, callerID string) (domain.PartyRole, error) {
	switch callerID {
	case "":
		return domain.RoleNone, nil
	case order.AuthorID:
		return domain.RoleAuthor, nil
	case order.CustomerID:
		return domain.RoleCustomer, nil
	default:
		return domain.RoleNone, nil
	}
}
