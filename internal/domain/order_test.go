package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	statuses := []OrderStatus{StatusPending, StatusAccepted, StatusRefused, StatusConfirmed}
	allowed := map[[2]OrderStatus]bool{
		{StatusPending, StatusAccepted}:   true,
		{StatusPending, StatusRefused}:    true,
		{StatusAccepted, StatusConfirmed}: true,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, allowed[[2]OrderStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRefused.IsTerminal())
	assert.True(t, StatusConfirmed.IsTerminal())
}

func TestParsePartyRole(t *testing.T) {
	role, err := ParsePartyRole("author")
	assert.NoError(t, err)
	assert.Equal(t, RoleAuthor, role)

	role, err = ParsePartyRole("customer")
	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	_, err = ParsePartyRole("Author")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmedBy(t *testing.T) {
	o := &Order{AuthorConfirmed: true}
	assert.True(t, o.ConfirmedBy(RoleAuthor))
	assert.False(t, o.ConfirmedBy(RoleCustomer))
	assert.False(t, o.ConfirmedBy(RoleNone))
}
