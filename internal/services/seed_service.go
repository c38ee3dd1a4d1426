package services

import (
	"fmt"
	"log"

	"github.com/spf13/cast"
)

// SeedProduct is one item of a seed dataset. Price and Stock accept any
// numeric-looking value (number or string) and are coerced before insertion.
type SeedProduct struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       any      `json:"price"`
	Stock       any      `json:"stock"`
	Description any      `json:"description"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// SeedService resets the catalog and repopulates it from a fixed dataset.
type SeedService struct {
	catalog *CatalogService
}

// NewSeedService creates a new SeedService.
func NewSeedService(catalog *CatalogService) *SeedService {
	return &SeedService{
		catalog: catalog,
	}
}

// Run empties the catalog, then creates one product per seed item in order.
// Each create is its own unit of work: a mid-sequence failure aborts the run
// and is reported as a whole, and products created before the failure stay in
// place. Running with an empty dataset just empties the catalog.
func (s *SeedService) Run(items []SeedProduct) (int, error) {
	if err := s.catalog.DeleteAll(); err != nil {
		return 0, fmt.Errorf("failed to reset catalog: %w", err)
	}

	for i, item := range items {
		input := CreateProductInput{
			Title:       item.Title,
			Slug:        item.Slug,
			Price:       cast.ToFloat64(item.Price),
			Stock:       cast.ToInt(item.Stock),
			Description: item.Description,
			Sizes:       item.Sizes,
			Gender:      item.Gender,
			Tags:        item.Tags,
			Images:      item.Images,
		}
		if _, err := s.catalog.Create(input); err != nil {
			log.Printf("seed aborted at item %d (%s): %v", i, item.Title, err)
			return i, fmt.Errorf("failed to seed product %q: %w", item.Title, err)
		}
	}

	return len(items), nil
}
