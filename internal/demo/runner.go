package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	cartapp "github.com/dwikikusuma/shoping-cart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shoping-cart/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shoping-cart/internal/checkout/app"
	"github.com/dwikikusuma/shoping-cart/internal/catalog/infra/memory"
	"github.com/dwikikusuma/shoping-cart/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-cart/internal/checkout/infra/adapter"
	userapp "github.com/dwikikusuma/shoping-cart/internal/user/app"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Users    *userapp.Service
	Checkout *checkoutapp.Service
	Log      *zap.Logger
}

// NewDeps wires the services over an empty in-memory catalog.
func NewDeps(log *zap.Logger, quoteConcurrency int) Deps {
	catalogSvc := catalogapp.NewService(memory.NewProductRepo())

	return Deps{
		Catalog:  catalogSvc,
		Cart:     cartapp.NewService(catalogSvc, log),
		Users:    userapp.NewService(log),
		Checkout: checkoutapp.NewService(adapter.NewCatalogServiceReader(catalogSvc), quoteConcurrency),
		Log:      log,
	}
}

// Run plays the scenario and writes the user, the cart and the total line to w.
func Run(ctx context.Context, s Scenario, d Deps, w io.Writer) error {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	for _, p := range s.Products {
		if _, err := d.Catalog.CreateProduct(ctx, p.ID, p.Name, p.Price, p.Stock); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	log.Info("catalog seeded", zap.Int("products", len(s.Products)))

	user, err := d.Users.Register(ctx, s.User.Username, s.User.Email)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	for _, a := range s.Adds {
		if err := d.Cart.AddItem(ctx, user.Cart, a.ProductID, a.Quantity); err != nil {
			return fmt.Errorf("add product %d: %w", a.ProductID, err)
		}
	}

	q, err := d.Checkout.Quote(ctx, adapter.CartItems(user.Cart))
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		q, err = domain.Quote{}, nil
	}
	if err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	log.Info("cart quoted",
		zap.String("cart_id", user.Cart.ID),
		zap.Int("lines", len(q.Lines)),
		zap.Float64("total", q.Total),
	)

	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n", user, user.Cart, q.TotalLine())
	return err
}
