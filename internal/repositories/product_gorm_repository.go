package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
//
// Duplicate-key detection relies on GORM's error translation, so the *gorm.DB
// handle must be opened with gorm.Config{TranslateError: true}.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// withImages preloads the image references in insertion order.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// translate maps backend failures onto the repository's sentinel errors.
func translate(err error, context string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", context, ErrProductNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %v", context, ErrDuplicateProduct, err)
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}

// Create persists a new product and its image references in one write.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}
	if err := r.db.Create(product).Error; err != nil {
		return translate(err, "failed to create product")
	}
	return nil
}

// FindPage retrieves a window of products in stable insertion order.
func (r *GORMProductRepository) FindPage(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := withImages(r.db).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its exact identifier.
func (r *GORMProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	if err := withImages(r.db).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("product with id %s", id))
	}
	return &product, nil
}

// FindByTerm resolves a product by identifier or by title/slug.
//
// An identifier-shaped term never falls through to the title/slug branch:
// UUIDs are not valid titles or slugs in this catalog, so the two strategies
// cannot be ambiguous.
func (r *GORMProductRepository) FindByTerm(term string) (*models.Product, error) {
	if _, err := uuid.Parse(term); err == nil {
		return r.FindByID(term)
	}
	var product models.Product
	err := withImages(r.db).
		Where("title = ? OR slug = ?", term, term).
		First(&product).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("product with term %q", term))
	}
	return &product, nil
}

// Save persists the product's own columns, leaving image rows untouched.
func (r *GORMProductRepository) Save(product *models.Product) error {
	if err := r.db.Omit("Images").Save(product).Error; err != nil {
		return translate(err, "failed to update product")
	}
	return nil
}

// ReplaceWithImages persists the product and swaps its entire image set inside
// a single transaction: delete every existing image row for the product,
// insert fresh rows from urls, save the merged product. Any failure rolls the
// whole unit back.
func (r *GORMProductRepository) ReplaceWithImages(product *models.Product, urls []string) error {
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.ProductImage{URL: url, ProductID: product.ID})
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete image references: %w", err)
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return fmt.Errorf("failed to create image references: %w", err)
			}
		}
		if err := tx.Omit("Images").Save(product).Error; err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}
		return nil
	})
	if err != nil {
		return translate(err, "failed to replace product images")
	}

	product.Images = images
	return nil
}

// Delete removes the product and cascades removal of its image references.
// The delete is unscoped so the unique title and slug become reusable.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete image references: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.Product{}, "id = ?", product.ID).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return translate(err, fmt.Sprintf("failed to delete product %s", product.ID))
	}
	return nil
}

// DeleteAll unconditionally wipes every product and image reference. Calling
// it on an empty catalog succeeds.
func (r *GORMProductRepository) DeleteAll() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete image references: %w", err)
		}
		if err := tx.Unscoped().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products: %w", err)
		}
		return nil
	})
	if err != nil {
		return translate(err, "failed to reset catalog")
	}
	return nil
}
