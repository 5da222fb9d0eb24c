package models

// Category groups products on the listing pages.
type Category struct {
	Base
	Name         string `gorm:"not null;uniqueIndex"`
	DisplayOrder int    `gorm:"not null;default:0"`
}
