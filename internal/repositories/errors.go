package repository

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrLineNotFound    = errors.New("item not found in the cart")
	ErrEmptyCart       = errors.New("cart is empty")
)

// InsufficientStockError names the first offending product, so callers can
// report exactly which line blocked the operation.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.Name, e.Requested, e.Available)
}

type InsufficientCashError struct {
	Total     float64
	CashGiven float64
}

func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("insufficient cash: total %.2f, given %.2f", e.Total, e.CashGiven)
}
