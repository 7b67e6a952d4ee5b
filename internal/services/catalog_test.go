package service_test

import (
	"testing"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(seed ...config.SeedProduct) *repository.Repos {
	cfg := &config.Config{}
	cfg.Catalog.Seed = seed

	return repository.New(cfg)
}

func seededCatalog() []config.SeedProduct {
	return []config.SeedProduct{
		{Name: "Espresso", Category: "Coffee", Price: 2.50, Stock: 5},
		{Name: "Blueberry Muffin", Category: "Bakery", Price: 2.00, Stock: 30},
	}
}

func TestCreateProductService(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		repos := newTestRepos()
		catalogService := service.NewCatalogService(repos.Catalog)

		product, err := catalogService.CreateProduct(ctx, &models.CreateProductRequest{
			Name:     "Bagel",
			Category: "Bakery",
			Price:    1.75,
			Stock:    25,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Bagel", product.Name)
	})

	t.Run("Markup Is Stripped From Name And Category", func(t *testing.T) {
		repos := newTestRepos()
		catalogService := service.NewCatalogService(repos.Catalog)

		product, err := catalogService.CreateProduct(ctx, &models.CreateProductRequest{
			Name:     `Bagel <script>alert("x")</script>`,
			Category: "<b>Bakery</b>",
			Price:    1.75,
			Stock:    25,
		})

		require.NoError(t, err)
		assert.Equal(t, "Bagel", product.Name)
		assert.Equal(t, "Bakery", product.Category)
	})

	t.Run("Failure - Name Empty After Sanitization", func(t *testing.T) {
		repos := newTestRepos()
		catalogService := service.NewCatalogService(repos.Catalog)

		product, err := catalogService.CreateProduct(ctx, &models.CreateProductRequest{
			Name:  "<script>alert(1)</script>",
			Price: 1.00,
		})

		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestGetProductService(t *testing.T) {
	ctx := t.Context()
	repos := newTestRepos(seededCatalog()...)
	catalogService := service.NewCatalogService(repos.Catalog)

	t.Run("Success", func(t *testing.T) {
		product, err := catalogService.GetProductByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Espresso", product.Name)
	})

	t.Run("Failure - Not Found Maps To NOT_FOUND", func(t *testing.T) {
		product, err := catalogService.GetProductByID(ctx, 77)

		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestAdjustService(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Stock And Price", func(t *testing.T) {
		repos := newTestRepos(seededCatalog()...)
		catalogService := service.NewCatalogService(repos.Catalog)

		product, err := catalogService.AdjustStock(ctx, 1, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), product.Stock)

		product, err = catalogService.AdjustPrice(ctx, 1, 2.75)
		require.NoError(t, err)
		assert.Equal(t, 2.75, product.Price)
	})

	t.Run("Failure - Negative Input Maps To Validation", func(t *testing.T) {
		repos := newTestRepos(seededCatalog()...)
		catalogService := service.NewCatalogService(repos.Catalog)

		_, err := catalogService.AdjustStock(ctx, 1, -5)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}
