package repository

import (
	"context"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils"
)

type CartRepository interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	// AddItem merges into an existing line or appends a new one. The merged
	// quantity is validated against live stock; on failure the cart is
	// unchanged.
	AddItem(ctx context.Context, productID, quantity int64) (*models.Cart, error)
	// UpdateQuantity clamps the requested quantity to [1, stock] and reports
	// whether clamping happened, so the caller can surface a warning instead
	// of a rejection.
	UpdateQuantity(ctx context.Context, productID, quantity int64) (*models.Cart, bool, error)
	RemoveItem(ctx context.Context, productID int64) (*models.Cart, error)
	Clear(ctx context.Context) error
}

type cartRepository struct {
	store *Store
}

func NewCartRepo(store *Store) CartRepository {
	return &cartRepository{store: store}
}

// view builds the cart response. Caller holds at least a read lock.
func (r *cartRepository) view() *models.Cart {

	s := r.store

	return &models.Cart{
		Lines:    s.cartSnapshot(),
		Subtotal: utils.Round2(s.cartSubtotal()),
	}
}

func (r *cartRepository) GetCart(ctx context.Context) (*models.Cart, error) {

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return r.view(), nil
}

func (r *cartRepository) AddItem(ctx context.Context, productID, quantity int64) (*models.Cart, error) {

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}

	desired := s.cartQuantity(productID) + quantity
	if desired > product.Stock {
		return nil, &InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: desired,
			Available: product.Stock,
		}
	}

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			// The unit price stays frozen at what it was when the line was
			// first added; only the quantity merges.
			s.cart[i].Quantity = desired

			return r.view(), nil
		}
	}

	s.cart = append(s.cart, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})

	return r.view(), nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, productID, quantity int64) (*models.Cart, bool, error) {

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, false, ErrProductNotFound
	}

	idx := -1

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return nil, false, ErrLineNotFound
	}

	// Stock can drop to zero through an inventory edit after the line was
	// added; there is no quantity in [1, stock] left to clamp to.
	if product.Stock == 0 {
		return nil, false, &InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: quantity,
			Available: 0,
		}
	}

	clamped := false

	if quantity < 1 {
		quantity = 1
		clamped = true
	}

	if quantity > product.Stock {
		quantity = product.Stock
		clamped = true
	}

	s.cart[idx].Quantity = quantity

	return r.view(), clamped, nil
}

// RemoveItem drops the line unconditionally; removing an absent product is a
// no-op, matching the delete buttons the terminal exposes.
func (r *cartRepository) RemoveItem(ctx context.Context, productID int64) (*models.Cart, error) {

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart[:0]

	for _, line := range s.cart {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}

	s.cart = lines

	return r.view(), nil
}

func (r *cartRepository) Clear(ctx context.Context) error {

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil

	return nil
}
