package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/shoping-cart/internal/cart/domain"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	products ProductReader
	log      *zap.Logger
}

func NewService(products ProductReader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		products: products,
		log:      log,
	}
}

func (s *Service) AddItem(ctx context.Context, cart *domain.Cart, productID, quantity int) error {
	if cart == nil || quantity <= 0 {
		return ErrInvalidInput
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product %d: %w", productID, err)
	}

	cart.AddProduct(product, quantity)
	s.log.Debug("cart item added",
		zap.String("cart_id", cart.ID),
		zap.Int("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, cart *domain.Cart, productID int) error {
	if cart == nil {
		return ErrInvalidInput
	}

	cart.RemoveProduct(productID)
	s.log.Debug("cart item removed",
		zap.String("cart_id", cart.ID),
		zap.Int("product_id", productID),
	)
	return nil
}
