package domain

import "fmt"

type QuoteLine struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

type Quote struct {
	Lines []QuoteLine
	Total float64
}

// TotalLine formats the total to two decimals, e.g. "Total: $1999.97".
func (q Quote) TotalLine() string {
	return fmt.Sprintf("Total: $%.2f", q.Total)
}
