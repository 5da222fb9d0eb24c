package models

import "time"

// Product is a catalog item. Image rows are owned by the product and are
// removed with it.
type Product struct {
	Base
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	PriceCents  int    `gorm:"not null"`
	Stock       int    `gorm:"not null;default:0"`
	CategoryID  uint   `gorm:"index;not null"`
	Category    Category
	Images      []ProductImage `gorm:"constraint:OnDelete:CASCADE"`
}

// ProductImage records one stored upload. ImageURL is a site-relative path of
// the form /images/products/product-<id>/<token>.<ext>, forward slashes on
// every platform. Rows are written once and never updated; replacing an image
// means deleting the row and uploading again.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index;not null"`
	ImageURL  string `gorm:"not null"`
	MimeType  string
	CreatedAt time.Time
}
