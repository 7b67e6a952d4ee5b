package models

// CartLine is one product+quantity pairing in the in-progress sale. UnitPrice
// and Name are snapshotted when the product is first added, so later catalog
// price edits do not change a sale already in progress.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int64   `json:"quantity"`
}

func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"omitempty,gt=0"`
}

type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// CartUpdateResponse carries the clamp warning for quantity updates that
// exceeded the available stock.
type CartUpdateResponse struct {
	Cart    *Cart  `json:"cart"`
	Warning string `json:"warning,omitempty"`
}
