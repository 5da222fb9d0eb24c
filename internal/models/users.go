package models

import "golang.org/x/crypto/bcrypt"

// Role is a user's access level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCompany  Role = "company"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCompany, RoleCustomer:
		return true
	}
	return false
}

// User is an account. Company accounts carry a CompanyID.
type User struct {
	Base
	Email        string `gorm:"index"`
	Phone        string `gorm:"index"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(16);not null;default:'customer'"`
	CompanyID    *uint  `gorm:"index"`
	Company      *Company
}

// HashPassword turns a plain password into a bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
