package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/shoping-cart/internal/catalog/app"
	"github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
)

// ProductRepo stores products in creation order. Get returns the stored
// pointer, so carts observe later edits to a product.
type ProductRepo struct {
	mu    sync.RWMutex
	order []int
	byID  map[int]*domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{byID: make(map[int]*domain.Product)}
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; ok {
		return nil, app.ErrDuplicate
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id int) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit int) ([]*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.order)
	if limit < n {
		n = limit
	}
	out := make([]*domain.Product, 0, n)
	for _, id := range r.order[:n] {
		out = append(out, r.byID[id])
	}
	return out, nil
}
