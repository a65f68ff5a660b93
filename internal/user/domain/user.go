package domain

import (
	"fmt"

	cart "github.com/dwikikusuma/shoping-cart/internal/cart/domain"
)

// User owns exactly one cart, created with the user and never replaced.
type User struct {
	Username string
	Email    string
	Cart     *cart.Cart
}

func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
		Cart:     cart.NewCart(),
	}
}

func (u *User) String() string {
	return fmt.Sprintf("User: %s, Email: %s", u.Username, u.Email)
}
