package models

// Product is a catalog entry. ID is assigned by the catalog and never reused;
// Stock is mutated only by inventory edits and checkout commits.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int64   `json:"stock"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Category string  `json:"category" validate:"omitempty,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int64   `json:"stock" validate:"gte=0"`
}

type AdjustStockRequest struct {
	Stock *int64 `json:"stock" validate:"required,gte=0"`
}

type AdjustPriceRequest struct {
	Price *float64 `json:"price" validate:"required,gte=0"`
}
