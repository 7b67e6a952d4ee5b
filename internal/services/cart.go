package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	AddItem(ctx context.Context, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, req *models.UpdateQuantityRequest) (*models.CartUpdateResponse, error)
	RemoveItem(ctx context.Context, productID int64) (*models.Cart, error)
	Clear(ctx context.Context) error
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) GetCart(ctx context.Context) (*models.Cart, error) {

	cart, err := s.repo.GetCart(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.Cart, error) {

	quantity := req.Quantity
	if quantity == 0 {
		// The terminal's "Add" button adds a single unit.
		quantity = 1
	}

	cart, err := s.repo.AddItem(ctx, req.ProductID, quantity)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return cart, nil
}

// UpdateQuantity follows the clamp-with-warning policy: a request beyond the
// available stock is reduced to the maximum and reported, not rejected.
func (s *cartService) UpdateQuantity(ctx context.Context, req *models.UpdateQuantityRequest) (*models.CartUpdateResponse, error) {

	cart, clamped, err := s.repo.UpdateQuantity(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, mapStoreError(err)
	}

	resp := &models.CartUpdateResponse{Cart: cart}

	if clamped {
		resp.Warning = fmt.Sprintf("Requested quantity %d was adjusted to the available stock", req.Quantity)
	}

	return resp, nil
}

func (s *cartService) RemoveItem(ctx context.Context, productID int64) (*models.Cart, error) {

	cart, err := s.repo.RemoveItem(ctx, productID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return cart, nil
}

func (s *cartService) Clear(ctx context.Context) error {

	if err := s.repo.Clear(ctx); err != nil {
		return mapStoreError(err)
	}

	return nil
}
