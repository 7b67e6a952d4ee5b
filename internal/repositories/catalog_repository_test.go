package repository_test

import (
	"testing"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(seed ...config.SeedProduct) *repository.Repos {
	cfg := &config.Config{}
	cfg.Catalog.Seed = seed

	return repository.New(cfg)
}

func espressoSeed() config.SeedProduct {
	return config.SeedProduct{Name: "Espresso", Category: "Coffee", Price: 2.50, Stock: 5}
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Id Assigned Above Existing Ids", func(t *testing.T) {
		// Arrange
		repos := newTestRepos(espressoSeed())

		product := &models.Product{Name: "Bagel", Category: "Bakery", Price: 1.75, Stock: 25}

		// Act
		err := repos.Catalog.CreateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(2), product.ID)

		fetched, err := repos.Catalog.GetProductByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Bagel", fetched.Name)
		assert.Equal(t, int64(25), fetched.Stock)
	})

	t.Run("Failure - Negative Price Rejected", func(t *testing.T) {
		// Arrange
		repos := newTestRepos()

		// Act
		err := repos.Catalog.CreateProduct(ctx, &models.Product{Name: "Broken", Price: -1})

		// Assert
		assert.Error(t, err)

		products, listErr := repos.Catalog.ListProducts(ctx, "")
		require.NoError(t, listErr)
		assert.Empty(t, products)
	})

	t.Run("Failure - Negative Stock Rejected", func(t *testing.T) {
		repos := newTestRepos()

		err := repos.Catalog.CreateProduct(ctx, &models.Product{Name: "Broken", Stock: -3})

		assert.Error(t, err)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := t.Context()
	repos := newTestRepos(espressoSeed())

	t.Run("Success", func(t *testing.T) {
		product, err := repos.Catalog.GetProductByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Espresso", product.Name)
		assert.Equal(t, 2.50, product.Price)
	})

	t.Run("Failure - Unknown Id", func(t *testing.T) {
		product, err := repos.Catalog.GetProductByID(ctx, 42)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("Returned Product Is A Copy", func(t *testing.T) {
		product, err := repos.Catalog.GetProductByID(ctx, 1)
		require.NoError(t, err)

		product.Stock = 999

		fetched, err := repos.Catalog.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), fetched.Stock)
	})
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	repos := newTestRepos(
		config.SeedProduct{Name: "Espresso", Price: 2.50, Stock: 50},
		config.SeedProduct{Name: "Cappuccino", Price: 3.50, Stock: 40},
		config.SeedProduct{Name: "Blueberry Muffin", Price: 2.00, Stock: 30},
	)

	t.Run("Empty Search Returns Everything In Insertion Order", func(t *testing.T) {
		products, err := repos.Catalog.ListProducts(ctx, "")

		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "Espresso", products[0].Name)
		assert.Equal(t, "Cappuccino", products[1].Name)
		assert.Equal(t, "Blueberry Muffin", products[2].Name)
	})

	t.Run("Search Is Case-Insensitive Substring", func(t *testing.T) {
		products, err := repos.Catalog.ListProducts(ctx, "mUfF")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Blueberry Muffin", products[0].Name)
	})

	t.Run("No Match Returns Empty Slice", func(t *testing.T) {
		products, err := repos.Catalog.ListProducts(ctx, "tea")

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestAdjustStockAndPrice(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Stock Overwritten", func(t *testing.T) {
		repos := newTestRepos(espressoSeed())

		product, err := repos.Catalog.AdjustStock(ctx, 1, 12)

		require.NoError(t, err)
		assert.Equal(t, int64(12), product.Stock)
	})

	t.Run("Success - Price Overwritten", func(t *testing.T) {
		repos := newTestRepos(espressoSeed())

		product, err := repos.Catalog.AdjustPrice(ctx, 1, 2.75)

		require.NoError(t, err)
		assert.Equal(t, 2.75, product.Price)
	})

	t.Run("Failure - Negative Values Rejected", func(t *testing.T) {
		repos := newTestRepos(espressoSeed())

		_, err := repos.Catalog.AdjustStock(ctx, 1, -1)
		assert.Error(t, err)

		_, err = repos.Catalog.AdjustPrice(ctx, 1, -0.01)
		assert.Error(t, err)

		product, err := repos.Catalog.GetProductByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), product.Stock)
		assert.Equal(t, 2.50, product.Price)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		repos := newTestRepos()

		_, err := repos.Catalog.AdjustStock(ctx, 9, 1)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}
