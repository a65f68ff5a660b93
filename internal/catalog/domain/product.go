package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Product struct {
	ID    int
	Name  string
	Price float64
	Stock int
}

func NewProduct(id int, name string, price float64, stock int) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

// String renders "<name> ($<price>) - <stock> in stock".
func (p *Product) String() string {
	return fmt.Sprintf("%s ($%s) - %d in stock", p.Name, FormatPrice(p.Price), p.Stock)
}

// FormatPrice prints the shortest decimal that round-trips, keeping at least
// one fractional digit so whole prices read as 1000.0.
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
