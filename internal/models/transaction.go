package models

import "time"

// Transaction is an immutable record of a committed sale. Items is a deep copy
// of the cart at commit time; financial fields are rounded to two decimals.
type Transaction struct {
	ID              int64      `json:"id"`
	Date            time.Time  `json:"date"`
	Items           []CartLine `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	DiscountPercent float64    `json:"discount"`
	Total           float64    `json:"total"`
	CashGiven       float64    `json:"cash"`
	Change          float64    `json:"change"`
}

// ItemCount is the number of units sold across all lines.
func (t *Transaction) ItemCount() int64 {
	var n int64
	for _, line := range t.Items {
		n += line.Quantity
	}

	return n
}

type CheckoutRequest struct {
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
	CashGiven       float64 `json:"cash_given" validate:"gte=0"`
}
