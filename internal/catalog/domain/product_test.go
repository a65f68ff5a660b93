package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductString(t *testing.T) {
	cases := []struct {
		name string
		p    *Product
		want string
	}{
		{"laptop", NewProduct(1, "Laptop", 999.99, 10), "Laptop ($999.99) - 10 in stock"},
		{"smartphone", NewProduct(2, "Smartphone", 499.99, 20), "Smartphone ($499.99) - 20 in stock"},
		{"whole price", NewProduct(3, "Desk", 1000, 0), "Desk ($1000.0) - 0 in stock"},
		{"negative values pass through", NewProduct(4, "Refund", -5.5, -1), "Refund ($-5.5) - -1 in stock"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.String())
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.0", FormatPrice(0))
	assert.Equal(t, "0.1", FormatPrice(0.1))
	assert.Equal(t, "12.5", FormatPrice(12.5))
	assert.Equal(t, "NaN", FormatPrice(math.NaN()))
}
