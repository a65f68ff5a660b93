package adapter

import (
	cartdomain "github.com/dwikikusuma/shoping-cart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/shoping-cart/internal/checkout/app"
)

// CartItems flattens a cart into checkout items, keeping cart order.
func CartItems(cart *cartdomain.Cart) []checkoutapp.CartItem {
	entries := cart.Entries()
	items := make([]checkoutapp.CartItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, checkoutapp.CartItem{
			ProductID: e.Product.ID,
			Quantity:  e.Quantity,
		})
	}
	return items
}
