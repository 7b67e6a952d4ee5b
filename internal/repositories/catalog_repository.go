package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
)

type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, search string) ([]*models.Product, error)
	AdjustStock(ctx context.Context, id int64, stock int64) (*models.Product, error)
	AdjustPrice(ctx context.Context, id int64, price float64) (*models.Product, error)
}

type catalogRepository struct {
	store *Store
}

func NewCatalogRepo(store *Store) CatalogRepository {
	return &catalogRepository{store: store}
}

// CreateProduct assigns the id and fills it back into product. Negative price
// or stock is rejected, never clamped; the request validation layer enforces
// the same policy earlier.
func (r *catalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	if product.Price < 0 || product.Stock < 0 {
		return fmt.Errorf("price and stock must be non-negative")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.addProduct(product.Name, product.Category, product.Price, product.Stock)
	product.ID = created.ID

	return nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	return &product, nil
}

// ListProducts filters by case-insensitive substring of the product name.
// An empty search returns the whole catalog in insertion order.
func (r *catalogRepository) ListProducts(ctx context.Context, search string) ([]*models.Product, error) {

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)

	products := make([]*models.Product, 0, len(s.productOrder))

	for _, id := range s.productOrder {

		product := s.products[id]

		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}

		products = append(products, &product)
	}

	return products, nil
}

func (r *catalogRepository) AdjustStock(ctx context.Context, id int64, stock int64) (*models.Product, error) {

	if stock < 0 {
		return nil, fmt.Errorf("stock must be non-negative")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	product.Stock = stock
	s.products[id] = product

	return &product, nil
}

func (r *catalogRepository) AdjustPrice(ctx context.Context, id int64, price float64) (*models.Product, error) {

	if price < 0 {
		return nil, fmt.Errorf("price must be non-negative")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	product.Price = price
	s.products[id] = product

	return &product, nil
}
