package models

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderApproved   OrderStatus = "approved"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the defined order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderProcessing, OrderShipped, OrderCancelled:
		return true
	}
	return false
}

// PaymentStatus is the payment state of an order. Payment capture itself is
// handled outside this application; orders start pending.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether s is one of the defined payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected, PaymentRefunded:
		return true
	}
	return false
}

// Order is a placed checkout. Items snapshot title and price at purchase time.
type Order struct {
	Base
	UserID        uint `gorm:"index;not null"`
	User          User
	Status        OrderStatus   `gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null;default:'pending'"`
	TotalCents    int           `gorm:"not null"`
	Items         []OrderItem   `gorm:"constraint:OnDelete:CASCADE"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"index;not null"`
	ProductID  uint   `gorm:"index"`
	Title      string `gorm:"not null"`
	PriceCents int    `gorm:"not null"`
	Qty        int    `gorm:"not null"`
}
