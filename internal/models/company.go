package models

// Company is an organisation whose users order on account.
type Company struct {
	Base
	Name          string `gorm:"not null"`
	StreetAddress string
	City          string
	PostalCode    string
	Phone         string
}
