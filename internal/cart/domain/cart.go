package domain

import (
	"strconv"
	"strings"
	"time"

	catalog "github.com/dwikikusuma/shoping-cart/internal/catalog/domain"
	"github.com/google/uuid"
)

// Entry is one cart line. Product is shared with the catalog, not copied.
type Entry struct {
	Product  *catalog.Product
	Quantity int
}

// Cart keeps at most one entry per product ID, iterated in first-add order.
// It is not safe for concurrent use.
type Cart struct {
	ID        string
	CreatedAt time.Time

	order []int
	items map[int]*Entry
}

func NewCart() *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		items:     make(map[int]*Entry),
	}
}

// AddProduct increments the quantity of an existing entry or appends a new one.
// Quantity is not checked against stock and may be zero or negative.
func (c *Cart) AddProduct(product *catalog.Product, quantity int) {
	if e, ok := c.items[product.ID]; ok {
		e.Quantity += quantity
		return
	}
	c.items[product.ID] = &Entry{Product: product, Quantity: quantity}
	c.order = append(c.order, product.ID)
}

// RemoveProduct drops the entry for productID. Absent IDs are ignored.
func (c *Cart) RemoveProduct(productID int) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Total sums price × quantity using the products' current prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, id := range c.order {
		e := c.items[id]
		total += e.Product.Price * float64(e.Quantity)
	}
	return total
}

func (c *Cart) Quantity(productID int) (int, bool) {
	e, ok := c.items[productID]
	if !ok {
		return 0, false
	}
	return e.Quantity, true
}

func (c *Cart) Len() int {
	return len(c.order)
}

// Entries returns a snapshot of the cart lines in iteration order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *Cart) String() string {
	parts := make([]string, 0, len(c.order))
	for _, id := range c.order {
		e := c.items[id]
		parts = append(parts, e.Product.Name+" x "+strconv.Itoa(e.Quantity))
	}
	return "Cart: " + strings.Join(parts, ", ")
}
