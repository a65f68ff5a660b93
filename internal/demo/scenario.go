package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ProductSpec struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
}

type UserSpec struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
}

type AddSpec struct {
	ProductID int `yaml:"product_id"`
	Quantity  int `yaml:"quantity"`
}

// Scenario is a scripted shopping session: seed the catalog, register one
// user, then add items to that user's cart in order.
type Scenario struct {
	Products []ProductSpec `yaml:"products"`
	User     UserSpec      `yaml:"user"`
	Adds     []AddSpec     `yaml:"adds"`
}

func Default() Scenario {
	return Scenario{
		Products: []ProductSpec{
			{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10},
			{ID: 2, Name: "Smartphone", Price: 499.99, Stock: 20},
		},
		User: UserSpec{Username: "john_doe", Email: "john@example.com"},
		Adds: []AddSpec{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 2},
		},
	}
}

// Load reads a YAML scenario. An empty path yields Default.
func Load(path string) (Scenario, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}
