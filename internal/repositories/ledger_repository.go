package repository

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils"
)

type LedgerRepository interface {
	// Commit finalizes the in-progress sale: validates the cart against live
	// stock, deducts inventory, appends the transaction and clears the cart,
	// all inside one critical section. On any failure the cart, catalog and
	// ledger are left exactly as they were.
	Commit(ctx context.Context, discountPercent, cashGiven float64) (*models.Transaction, error)
	// All returns transactions in commit order.
	All(ctx context.Context) ([]models.Transaction, error)
	// Recent returns up to n transactions, newest first.
	Recent(ctx context.Context, n int) ([]models.Transaction, error)
}

type ledgerRepository struct {
	store *Store
}

func NewLedgerRepo(store *Store) LedgerRepository {
	return &ledgerRepository{store: store}
}

func (r *ledgerRepository) Commit(ctx context.Context, discountPercent, cashGiven float64) (*models.Transaction, error) {

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := s.cartSubtotal()
	total := utils.Round2(subtotal * (1 - discountPercent/100))

	if cashGiven < total {
		return nil, &InsufficientCashError{Total: total, CashGiven: cashGiven}
	}

	// Stock may have changed since the items were added, e.g. through an
	// inventory edit, so every line is re-validated before anything mutates.
	for _, line := range s.cart {

		product, ok := s.products[line.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}

		if line.Quantity > product.Stock {
			return nil, &InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.Stock,
			}
		}
	}

	for _, line := range s.cart {
		product := s.products[line.ProductID]
		product.Stock -= line.Quantity
		s.products[line.ProductID] = product
	}

	transaction := models.Transaction{
		ID:              int64(len(s.transactions)) + 1,
		Date:            time.Now(),
		Items:           s.cartSnapshot(),
		Subtotal:        utils.Round2(subtotal),
		DiscountPercent: discountPercent,
		Total:           total,
		CashGiven:       utils.Round2(cashGiven),
		Change:          utils.Round2(cashGiven - total),
	}

	s.transactions = append(s.transactions, transaction)
	s.cart = nil

	return &transaction, nil
}

func (r *ledgerRepository) All(ctx context.Context) ([]models.Transaction, error) {

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Transaction, len(s.transactions))
	copy(all, s.transactions)

	return all, nil
}

func (r *ledgerRepository) Recent(ctx context.Context, n int) ([]models.Transaction, error) {

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.transactions) {
		n = len(s.transactions)
	}

	recent := make([]models.Transaction, 0, n)

	for i := len(s.transactions) - 1; i >= len(s.transactions)-n; i-- {
		recent = append(recent, s.transactions[i])
	}

	return recent, nil
}
