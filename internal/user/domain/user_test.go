package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser("john_doe", "john@example.com")

	require.NotNil(t, u.Cart)
	assert.Equal(t, 0, u.Cart.Len())
	assert.Equal(t, "User: john_doe, Email: john@example.com", u.String())
}

func TestNewUser_OwnCart(t *testing.T) {
	a := NewUser("a", "a@example.com")
	b := NewUser("a", "a@example.com")

	assert.NotSame(t, a.Cart, b.Cart)
	assert.NotEqual(t, a.Cart.ID, b.Cart.ID)
}
