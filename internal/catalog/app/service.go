package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate product id")
)

type createProductInput struct {
	ID    int     `validate:"gt=0"`
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
	Stock int     `validate:"gte=0"`
}

type Service struct {
	repo     ProductRepo
	validate *validator.Validate
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) CreateProduct(ctx context.Context, id int, name string, price float64, stock int) (*domain.Product, error) {
	in := createProductInput{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.repo.Create(ctx, domain.NewProduct(in.ID, in.Name, in.Price, in.Stock))
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, limit)
}
