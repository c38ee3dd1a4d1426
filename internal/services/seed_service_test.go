package services_test

import (
	"testing"

	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func newSeededCatalog() (*services.CatalogService, *services.SeedService) {
	repo := repositories.NewMockProductRepository()
	catalog := services.NewCatalogService(repo, nil)
	return catalog, services.NewSeedService(catalog)
}

func TestSeedService_Run(t *testing.T) {
	catalog, seeder := newSeededCatalog()

	items := []services.SeedProduct{
		{Title: "Hoodie", Price: 64, Stock: 10, Images: []string{"hoodie.jpg"}},
		{Title: "Jacket", Price: "200", Stock: "5", Description: "Quilted"},
		{Title: "Shirt", Price: 19.99, Stock: 3},
	}

	created, err := seeder.Run(items)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)

	// String-typed numerics are coerced before insertion
	jacket, err := catalog.GetPlain("jacket")
	assert.NoError(t, err)
	assert.Equal(t, 200.0, jacket.Price)
	assert.Equal(t, 5, jacket.Stock)
	assert.Equal(t, "Quilted", jacket.Description)

	hoodie, err := catalog.GetPlain("hoodie")
	assert.NoError(t, err)
	assert.Equal(t, []string{"hoodie.jpg"}, hoodie.Images)
}

func TestSeedService_RunReplacesExistingCatalog(t *testing.T) {
	catalog, seeder := newSeededCatalog()

	_, err := catalog.Create(services.CreateProductInput{Title: "Leftover"})
	assert.NoError(t, err)

	created, err := seeder.Run([]services.SeedProduct{{Title: "Fresh", Price: 1, Stock: 1}})
	assert.NoError(t, err)
	assert.Equal(t, 1, created)

	_, err = catalog.GetPlain("leftover")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestSeedService_RunEmptyDataset(t *testing.T) {
	catalog, seeder := newSeededCatalog()

	_, err := catalog.Create(services.CreateProductInput{Title: "Leftover"})
	assert.NoError(t, err)

	created, err := seeder.Run(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, created)

	products, err := catalog.List(10, 0)
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestSeedService_RunAbortsOnFailure(t *testing.T) {
	catalog, seeder := newSeededCatalog()

	// The third item collides with the first; the run aborts there and the
	// products created before the failure stay in place.
	items := []services.SeedProduct{
		{Title: "Hoodie", Price: 64, Stock: 10},
		{Title: "Jacket", Price: 200, Stock: 5},
		{Title: "Hoodie", Price: 64, Stock: 10},
	}

	created, err := seeder.Run(items)
	assert.Error(t, err)
	assert.Equal(t, 2, created)

	products, listErr := catalog.List(10, 0)
	assert.NoError(t, listErr)
	assert.Len(t, products, 2)
}
