package app

import (
	"context"

	"github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, limit int) ([]*domain.Product, error)
}
