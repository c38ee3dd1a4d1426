package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product together with its owned image references.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,min=1,max=255"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,max=255"`
	Price       float64        `json:"price" validate:"gte=0"`
	Stock       int            `json:"stock" validate:"gte=0"`
	Description string         `json:"description" gorm:"type:text"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" gorm:"type:varchar(50)"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductImage is an image reference owned by exactly one product. It has no
// lifecycle of its own: it is created, replaced and deleted with its owner.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	URL       string `json:"url" gorm:"type:varchar(512);not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);index;not null"`
}

// PlainProduct is the externally visible shape of a product: the image
// references are flattened to their URL strings, in stored order.
type PlainProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// Plain returns the flattened projection of the product.
func (p *Product) Plain() PlainProduct {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      urls,
	}
}

// BeforeCreate assigns a UUID when none was supplied.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// BeforeSave normalizes the slug on every write. An empty slug defaults to the
// title; the result is lowercased with spaces replaced by underscores and
// apostrophes removed, so both keys stay URL-safe.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = strings.ToLower(p.Slug)
	p.Slug = strings.ReplaceAll(p.Slug, " ", "_")
	p.Slug = strings.ReplaceAll(p.Slug, "'", "")
	return nil
}
