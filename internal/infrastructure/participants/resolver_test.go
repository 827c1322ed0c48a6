package participants

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	order := &domain.Order{AuthorID: "author-1", CustomerID: "customer-1"}
	tests := []struct {
		caller string
		want   domain.PartyRole
	}{
		{caller: "author-1", want: domain.RoleAuthor},
		{caller: "customer-1", want: domain.RoleCustomer},
		{caller: "someone", want: domain.RoleNone},
		{caller: "", want: domain.RoleNone},
	}
	r := NewOrderParticipantResolver()
	for _, tt := range tests {
		got, err := r.ResolveRole(context.Background(), order, tt.caller)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.caller)
	}
}
