package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// DB implements Store on top of gorm.
type DB struct {
	db *gorm.DB
}

// New wraps a gorm connection in the Store port.
func New(gdb *gorm.DB) *DB {
	return &DB{db: gdb}
}

func (s *DB) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&DB{db: tx})
	})
}

// ---------- users ----------

func (s *DB) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *DB) SaveUser(u *models.User) error {
	if err := s.db.Save(u).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *DB) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.Preload("Company").First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find user")
	}
	return &u, nil
}

// UserByIdent looks a user up by email, phone or username, classifying the
// identifier the same way the login form does: an "@" means email, all digits
// (or a leading "+") means phone, anything else is a username.
func (s *DB) UserByIdent(ident string) (*models.User, error) {
	q := s.db
	switch {
	case strings.Contains(ident, "@"):
		q = q.Where("email = ?", ident)
	case strings.HasPrefix(ident, "+") || isDigits(ident):
		q = q.Where("phone = ?", ident)
	default:
		q = q.Where("username = ?", ident)
	}
	var u models.User
	if err := q.First(&u).Error; err != nil {
		return nil, notFoundOr(err, "failed to find user")
	}
	return &u, nil
}

func (s *DB) UsernameTaken(username string) (bool, error) {
	var cnt int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return cnt > 0, nil
}

func (s *DB) ContactTaken(email, phone string) (bool, error) {
	var cnt int64
	q := s.db.Model(&models.User{})
	switch {
	case email != "":
		q = q.Where("email = ?", email)
	case phone != "":
		q = q.Where("phone = ?", phone)
	default:
		return false, nil
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return cnt > 0, nil
}

func (s *DB) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Company").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ---------- companies ----------

func (s *DB) Companies() ([]models.Company, error) {
	var cos []models.Company
	if err := s.db.Order("name").Find(&cos).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return cos, nil
}

func (s *DB) CompanyByID(id uint) (*models.Company, error) {
	var co models.Company
	if err := s.db.First(&co, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find company")
	}
	return &co, nil
}

func (s *DB) SaveCompany(co *models.Company) error {
	if err := s.db.Save(co).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (s *DB) DeleteCompany(id uint) error {
	res := s.db.Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- categories ----------

func (s *DB) Categories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("display_order, name").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

func (s *DB) CategoryByID(id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find category")
	}
	return &cat, nil
}

func (s *DB) SaveCategory(cat *models.Category) error {
	if err := s.db.Save(cat).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (s *DB) DeleteCategory(id uint) error {
	res := s.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- products ----------

func (s *DB) Products() ([]models.Product, error) {
	var items []models.Product
	if err := s.db.Preload("Category").Preload("Images").Order("id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return items, nil
}

func (s *DB) ProductByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.Preload("Category").Preload("Images").First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find product")
	}
	return &p, nil
}

// SaveProduct inserts p when its ID is zero and updates it otherwise.
func (s *DB) SaveProduct(p *models.Product) error {
	if err := s.db.Omit("Category", "Images").Save(p).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// DeleteProduct removes the product and its image rows.
func (s *DB) DeleteProduct(id uint) error {
	res := s.db.Select(clause.Associations).Delete(&models.Product{Base: models.Base{ID: id}})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DB) AddImage(img *models.ProductImage) error {
	if err := s.db.Create(img).Error; err != nil {
		return fmt.Errorf("failed to add image: %w", err)
	}
	return nil
}

func (s *DB) ImageByID(id uint) (*models.ProductImage, error) {
	var img models.ProductImage
	if err := s.db.First(&img, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find image")
	}
	return &img, nil
}

func (s *DB) DeleteImage(id uint) error {
	res := s.db.Delete(&models.ProductImage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- orders ----------

func (s *DB) CreateOrder(o *models.Order) error {
	if err := s.db.Omit("User").Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *DB) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("User").Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *DB) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Where("user_id = ?", userID).Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *DB) OrderByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.Preload("Items").Preload("User").First(&o, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find order")
	}
	return &o, nil
}

func (s *DB) SaveOrder(o *models.Order) error {
	if err := s.db.Omit("User", "Items").Save(o).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
