package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one line of an order. Identity for all mutation and review
// logic is the (ProductID, Variant) pair, never the row position.
type OrderItem struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	OrderID           uint           `gorm:"index;not null" json:"order_id"`
	ProductID         uint           `gorm:"index;not null" json:"product_id"`
	Variant           string         `gorm:"not null" json:"variant"`
	Name              string         `gorm:"not null" json:"name"` // product name snapshot
	Unit              string         `gorm:"default:''" json:"unit"`
	Quantity          int            `gorm:"not null" json:"quantity"`
	AvailableQuantity *int           `json:"available_quantity,omitempty"` // nil until the warehouse reports
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
