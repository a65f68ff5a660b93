package memory

import (
	"context"
	"testing"

	"github.com/dwikikusuma/shoping-cart/internal/catalog/app"
	"github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo()

	p := domain.NewProduct(1, "Laptop", 999.99, 10)
	created, err := r.Create(ctx, p)
	require.NoError(t, err)
	assert.Same(t, p, created)

	got, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = r.Get(ctx, 2)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestProductRepo_Duplicate(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo()

	_, err := r.Create(ctx, domain.NewProduct(1, "Laptop", 999.99, 10))
	require.NoError(t, err)

	_, err = r.Create(ctx, domain.NewProduct(1, "Other", 1, 1))
	assert.ErrorIs(t, err, app.ErrDuplicate)

	got, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
}

func TestProductRepo_ListOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepo()

	for _, id := range []int{5, 2, 9} {
		_, err := r.Create(ctx, domain.NewProduct(id, "p", 1, 1))
		require.NoError(t, err)
	}

	all, err := r.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{5, 2, 9}, []int{all[0].ID, all[1].ID, all[2].ID})

	two, err := r.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestProductRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewProductRepo()
	_, err := r.Get(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
