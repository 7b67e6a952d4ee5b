package repository

import (
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
)

// Store is the session aggregate: catalog, cart and ledger for one register,
// guarded by a single mutex. Every mutating operation, including inventory
// edits arriving while a sale is in progress, serializes through it, which is
// what makes the checkout commit a single critical section.
type Store struct {
	mu sync.RWMutex

	products     map[int64]models.Product
	productOrder []int64
	nextID       int64

	cart []models.CartLine

	transactions []models.Transaction
}

type Repos struct {
	Store   *Store
	Catalog CatalogRepository
	Cart    CartRepository
	Ledger  LedgerRepository
}

func New(cfg *config.Config) *Repos {

	store := &Store{
		products: make(map[int64]models.Product),
	}

	for _, seed := range cfg.Catalog.Seed {
		store.addProduct(seed.Name, seed.Category, seed.Price, seed.Stock)
	}

	return &Repos{
		Store:   store,
		Catalog: NewCatalogRepo(store),
		Cart:    NewCartRepo(store),
		Ledger:  NewLedgerRepo(store),
	}
}

// addProduct assumes the caller holds the lock (or is still single-threaded
// during seeding). Ids are assigned strictly above every id ever issued.
func (s *Store) addProduct(name, category string, price float64, stock int64) models.Product {

	s.nextID++

	product := models.Product{
		ID:       s.nextID,
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}

	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)

	return product
}

// cartQuantity returns the quantity already reserved in the cart for the
// product. Caller holds the lock.
func (s *Store) cartQuantity(productID int64) int64 {

	for _, line := range s.cart {
		if line.ProductID == productID {
			return line.Quantity
		}
	}

	return 0
}

// cartSubtotal is the unrounded sum over all lines. Caller holds the lock.
func (s *Store) cartSubtotal() float64 {

	var subtotal float64

	for _, line := range s.cart {
		subtotal += line.LineTotal()
	}

	return subtotal
}

// cartSnapshot deep-copies the cart lines. Committed transactions must not
// alias the live cart, which is cleared right after commit.
func (s *Store) cartSnapshot() []models.CartLine {

	snapshot := make([]models.CartLine, len(s.cart))
	copy(snapshot, s.cart)

	return snapshot
}

// CheckInvariants scans the catalog for negative stock. The commit path is
// designed to make a violation unreachable, so a hit here is a programming
// defect, not a user-facing condition. Used by the health endpoint.
func (s *Store) CheckInvariants() error {

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.productOrder {
		if p := s.products[id]; p.Stock < 0 {
			return fmt.Errorf("product %d (%s) has negative stock %d", p.ID, p.Name, p.Stock)
		}
	}

	return nil
}
