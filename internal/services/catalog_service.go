package services

import (
	"errors"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"

	"github.com/spf13/cast"
)

// ErrInternal is the opaque error surfaced for unexpected persistence or
// transaction failures. The underlying cause is logged server-side and never
// leaks to the caller.
var ErrInternal = errors.New("unexpected error, check server logs")

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// CreateProductInput is a draft for a new product. Description accepts any
// primitive and is normalized to its string representation before storage.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Slug        string   `json:"slug" validate:"omitempty,max=255"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Description any      `json:"description"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdateProductInput is a partial patch. Nil fields keep the stored value.
// A non-nil Images list fully replaces the product's image set; a nil Images
// list leaves it untouched.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string  `json:"slug" validate:"omitempty,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Description any      `json:"description"`
	Sizes       []string `json:"sizes"`
	Gender      *string  `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// CatalogService composes the product repository with event publication and
// translates persistence failures into the service's error taxonomy:
// repositories.ErrProductNotFound, repositories.ErrDuplicateProduct, and
// ErrInternal for everything else.
type CatalogService struct {
	repo repositories.ProductRepository
	mq   *rabbitmq.Client // optional, nil disables event publication
}

// NewCatalogService creates a new CatalogService. The RabbitMQ client may be
// nil; catalog operations never fail because of event publication.
func NewCatalogService(repo repositories.ProductRepository, mq *rabbitmq.Client) *CatalogService {
	return &CatalogService{
		repo: repo,
		mq:   mq,
	}
}

// translate passes the expected outcomes through unchanged and collapses
// everything else into ErrInternal after logging the full detail.
func (s *CatalogService) translate(err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) || errors.Is(err, repositories.ErrDuplicateProduct) {
		return err
	}
	log.Printf("catalog error: %v", err)
	return ErrInternal
}

// publish sends a catalog change event. Failures are logged, never surfaced.
func (s *CatalogService) publish(action string, product *models.Product) {
	if s.mq == nil {
		return
	}
	event := rabbitmq.ProductEvent{
		Action:    action,
		ProductID: product.ID,
		Title:     product.Title,
		Slug:      product.Slug,
	}
	if err := s.mq.PublishProductEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", action, product.ID, err)
	}
}

// Create builds a product from the draft, materializes the image urls as
// owned references, and persists both in one write.
func (s *CatalogService) Create(input CreateProductInput) (*models.Product, error) {
	images := make([]models.ProductImage, 0, len(input.Images))
	for _, url := range input.Images {
		images = append(images, models.ProductImage{URL: url})
	}

	product := &models.Product{
		Title:       input.Title,
		Slug:        input.Slug,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: cast.ToString(input.Description),
		Sizes:       input.Sizes,
		Gender:      input.Gender,
		Tags:        input.Tags,
		Images:      images,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, s.translate(err)
	}

	s.publish("product.created", product)
	return product, nil
}

// List returns a window of plain products in stable insertion order. A
// non-positive limit falls back to the default, and the limit is capped so a
// single request cannot drain the whole catalog.
func (s *CatalogService) List(limit, offset int) ([]models.PlainProduct, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.FindPage(limit, offset)
	if err != nil {
		return nil, s.translate(err)
	}

	plain := make([]models.PlainProduct, 0, len(products))
	for i := range products {
		plain = append(plain, products[i].Plain())
	}
	return plain, nil
}

// GetPlain resolves a product by term (identifier or title/slug) and returns
// its flattened projection.
func (s *CatalogService) GetPlain(term string) (models.PlainProduct, error) {
	product, err := s.repo.FindByTerm(term)
	if err != nil {
		return models.PlainProduct{}, s.translate(err)
	}
	return product.Plain(), nil
}

// Update merges the patch onto the stored product and persists it. When the
// patch carries an image list the whole image set is replaced inside one
// atomic unit of work; otherwise the image rows are not touched. The returned
// projection is re-fetched from storage so it reflects the committed state.
func (s *CatalogService) Update(id string, patch UpdateProductInput) (models.PlainProduct, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return models.PlainProduct{}, s.translate(err)
	}

	if patch.Title != nil {
		product.Title = *patch.Title
	}
	if patch.Slug != nil {
		product.Slug = *patch.Slug
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Description != nil {
		product.Description = cast.ToString(patch.Description)
	}
	if patch.Sizes != nil {
		product.Sizes = patch.Sizes
	}
	if patch.Gender != nil {
		product.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		product.Tags = patch.Tags
	}

	if patch.Images != nil {
		err = s.repo.ReplaceWithImages(product, patch.Images)
	} else {
		err = s.repo.Save(product)
	}
	if err != nil {
		return models.PlainProduct{}, s.translate(err)
	}

	updated, err := s.repo.FindByID(id)
	if err != nil {
		return models.PlainProduct{}, s.translate(err)
	}

	s.publish("product.updated", updated)
	return updated.Plain(), nil
}

// Remove deletes a product and all of its image references.
func (s *CatalogService) Remove(id string) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return s.translate(err)
	}
	if err := s.repo.Delete(product); err != nil {
		return s.translate(err)
	}
	s.publish("product.deleted", product)
	return nil
}

// DeleteAll unconditionally empties the catalog. It exists for the seeding
// flow and is idempotent.
func (s *CatalogService) DeleteAll() error {
	if err := s.repo.DeleteAll(); err != nil {
		return s.translate(err)
	}
	return nil
}
