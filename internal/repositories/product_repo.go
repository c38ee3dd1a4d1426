package repositories

import (
	"errors"

	"katalog/internal/models"
)

// Sentinel errors shared by every ProductRepository implementation. Callers
// match them with errors.Is; implementations wrap them with context.
var (
	// ErrProductNotFound signals that no product matched the given id or term.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct signals a unique-constraint violation on title or slug.
	ErrDuplicateProduct = errors.New("duplicate product title or slug")
)

// ProductRepository defines the interface for product data access.
//
// A product owns its image references: Create persists both in one write,
// ReplaceWithImages swaps the whole image set atomically, Delete and DeleteAll
// cascade to the image rows.
type ProductRepository interface {
	// Create persists a new product together with its image references.
	Create(product *models.Product) error
	// FindPage returns a window of products in stable insertion order, with
	// images eagerly loaded. The caller is responsible for defaulting limit
	// and offset.
	FindPage(limit, offset int) ([]models.Product, error)
	// FindByID resolves a product by its exact identifier, images included.
	FindByID(id string) (*models.Product, error)
	// FindByTerm resolves a product by identifier when the term parses as a
	// UUID, otherwise by exact title-or-slug match. Images are eagerly loaded.
	FindByTerm(term string) (*models.Product, error)
	// Save persists changes to the product's own fields without touching its
	// image references.
	Save(product *models.Product) error
	// ReplaceWithImages persists the product and swaps its entire image set
	// for the given urls inside one atomic unit of work. On failure the
	// stored product and images are left exactly as they were.
	ReplaceWithImages(product *models.Product, urls []string) error
	// Delete removes the product and all of its image references.
	Delete(product *models.Product) error
	// DeleteAll unconditionally removes every product and every image
	// reference. Deleting an empty catalog is a no-op success.
	DeleteAll() error
}
