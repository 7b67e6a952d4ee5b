package models

type SalesSummary struct {
	TotalSales       float64 `json:"total_sales"`
	TotalItemsSold   int64   `json:"total_items_sold"`
	TransactionCount int     `json:"transaction_count"`
}

// TopSeller aggregates quantity sold by product name across the whole ledger.
type TopSeller struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
