package repositories

import (
	"fmt"
	"strings"
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It honors the same contract as the GORM implementation: stable insertion
// order, term resolution, unique title/slug, and all-or-nothing image
// replacement.
type MockProductRepository struct {
	products []models.Product // insertion order
	nextID   uint             // image reference ids
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// normalizeSlug mirrors the model's BeforeSave hook, which GORM applies but
// this in-memory store must apply itself.
func normalizeSlug(p *models.Product) {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = strings.ToLower(p.Slug)
	p.Slug = strings.ReplaceAll(p.Slug, " ", "_")
	p.Slug = strings.ReplaceAll(p.Slug, "'", "")
}

// conflicts reports whether another product already holds the title or slug.
func (r *MockProductRepository) conflicts(p *models.Product) error {
	for i := range r.products {
		if r.products[i].ID == p.ID {
			continue
		}
		if r.products[i].Title == p.Title || r.products[i].Slug == p.Slug {
			return fmt.Errorf("title %q / slug %q: %w", p.Title, p.Slug, ErrDuplicateProduct)
		}
	}
	return nil
}

// Create adds a new product with its image references.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	normalizeSlug(product)
	if err := r.conflicts(product); err != nil {
		return err
	}
	for i := range product.Images {
		r.nextID++
		product.Images[i].ID = r.nextID
		product.Images[i].ProductID = product.ID
	}
	r.products = append(r.products, *product)
	return nil
}

// FindPage returns a window of products in insertion order.
func (r *MockProductRepository) FindPage(limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.products) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	page := make([]models.Product, end-offset)
	copy(page, r.products[offset:end])
	return page, nil
}

// FindByID returns a product by its exact identifier.
func (r *MockProductRepository) FindByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with id %s: %w", id, ErrProductNotFound)
}

// FindByTerm resolves by identifier when the term is a UUID, otherwise by
// exact title-or-slug match.
func (r *MockProductRepository) FindByTerm(term string) (*models.Product, error) {
	if _, err := uuid.Parse(term); err == nil {
		return r.FindByID(term)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].Title == term || r.products[i].Slug == term {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with term %q: %w", term, ErrProductNotFound)
}

// Save updates the product's own fields, preserving its stored image set.
func (r *MockProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeSlug(product)
	if err := r.conflicts(product); err != nil {
		return err
	}
	for i := range r.products {
		if r.products[i].ID == product.ID {
			images := r.products[i].Images
			r.products[i] = *product
			r.products[i].Images = images
			return nil
		}
	}
	return fmt.Errorf("product with id %s: %w", product.ID, ErrProductNotFound)
}

// ReplaceWithImages updates the product and swaps its whole image set. The
// stored state is only touched once every check has passed, which gives the
// same all-or-nothing behavior as the transactional implementation.
func (r *MockProductRepository) ReplaceWithImages(product *models.Product, urls []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalizeSlug(product)
	if err := r.conflicts(product); err != nil {
		return err
	}
	for i := range r.products {
		if r.products[i].ID == product.ID {
			images := make([]models.ProductImage, 0, len(urls))
			for _, url := range urls {
				r.nextID++
				images = append(images, models.ProductImage{ID: r.nextID, URL: url, ProductID: product.ID})
			}
			r.products[i] = *product
			r.products[i].Images = images
			product.Images = images
			return nil
		}
	}
	return fmt.Errorf("product with id %s: %w", product.ID, ErrProductNotFound)
}

// Delete removes a product and its image references.
func (r *MockProductRepository) Delete(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with id %s: %w", product.ID, ErrProductNotFound)
}

// DeleteAll empties the catalog. Idempotent.
func (r *MockProductRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	return nil
}
