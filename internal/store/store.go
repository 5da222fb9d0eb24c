// Package store is the persistence port for the application. Handlers talk to
// the Store interface only; the gorm implementation backs it with postgres in
// production and sqlite in tests.
package store

import (
	"errors"

	"storefront/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the capability set the handlers need from persistence.
//
// Transaction runs fn against a store bound to one database transaction;
// returning an error rolls everything back. Handlers use it as the single
// commit point of a request.
type Store interface {
	Transaction(fn func(Store) error) error

	CreateUser(u *models.User) error
	SaveUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByIdent(ident string) (*models.User, error)
	UsernameTaken(username string) (bool, error)
	ContactTaken(email, phone string) (bool, error)
	Users() ([]models.User, error)

	Companies() ([]models.Company, error)
	CompanyByID(id uint) (*models.Company, error)
	SaveCompany(co *models.Company) error
	DeleteCompany(id uint) error

	Categories() ([]models.Category, error)
	CategoryByID(id uint) (*models.Category, error)
	SaveCategory(cat *models.Category) error
	DeleteCategory(id uint) error

	Products() ([]models.Product, error)
	ProductByID(id uint) (*models.Product, error)
	SaveProduct(p *models.Product) error
	DeleteProduct(id uint) error
	AddImage(img *models.ProductImage) error
	ImageByID(id uint) (*models.ProductImage, error)
	DeleteImage(id uint) error

	CreateOrder(o *models.Order) error
	Orders() ([]models.Order, error)
	OrdersByUser(userID uint) ([]models.Order, error)
	OrderByID(id uint) (*models.Order, error)
	SaveOrder(o *models.Order) error
}
