package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/shoping-cart/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

type CartItem struct {
	ProductID int
	Quantity  int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int) (Product, error)
}

type Product struct {
	ID    int
	Name  string
	Price float64
}

type Service struct {
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var ErrEmptyCart = errors.New("cart is empty")

// Quote prices items at the catalog's current prices. Lines keep the order of
// items and the total is accumulated in that order.
func (s *Service) Quote(ctx context.Context, items []CartItem) (domain.Quote, error) {
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", it.ProductID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price * float64(it.Quantity),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var total float64
	for _, line := range lines {
		total += line.LineTotal
	}

	return domain.Quote{
		Lines: lines,
		Total: total,
	}, nil
}
