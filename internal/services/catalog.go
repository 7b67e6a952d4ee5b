package service

import (
	"context"
	"strings"

	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, search string) ([]*models.Product, error)
	AdjustStock(ctx context.Context, id int64, stock int64) (*models.Product, error)
	AdjustPrice(ctx context.Context, id int64, price float64) (*models.Product, error)
}

type catalogService struct {
	repo      repository.CatalogRepository
	sanitizer *bluemonday.Policy
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	// Operator-supplied strings end up on receipts and exports, so they are
	// stripped of any markup before entering the catalog.
	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return nil, appErrors.ValidationError("Product name must not be empty")
	}

	product := &models.Product{
		Name:     name,
		Category: strings.TrimSpace(s.sanitizer.Sanitize(req.Category)),
		Price:    req.Price,
		Stock:    req.Stock,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.ValidationError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, search string) ([]*models.Product, error) {

	products, err := s.repo.ListProducts(ctx, search)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *catalogService) AdjustStock(ctx context.Context, id int64, stock int64) (*models.Product, error) {

	if stock < 0 {
		return nil, appErrors.ValidationError("Stock must be non-negative")
	}

	product, err := s.repo.AdjustStock(ctx, id, stock)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return product, nil
}

func (s *catalogService) AdjustPrice(ctx context.Context, id int64, price float64) (*models.Product, error) {

	if price < 0 {
		return nil, appErrors.ValidationError("Price must be non-negative")
	}

	product, err := s.repo.AdjustPrice(ctx, id, price)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return product, nil
}
