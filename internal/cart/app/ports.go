package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
)

// ProductReader resolves catalog products by ID. It must return the shared
// product pointer, not a copy.
type ProductReader interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}
