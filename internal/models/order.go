package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a customer order moving through the fulfillment workflow.
// OriginalOrderID links a back-order to the order whose shortfall spawned it;
// BackOrders is the reverse side of the same link.
type Order struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	OrderNo               string         `gorm:"uniqueIndex;not null" json:"order_no"`
	CustomerID            uint           `gorm:"index;not null" json:"customer_id"`
	Status                string         `gorm:"index;not null" json:"status"`
	IsPartialOrder        bool           `gorm:"not null;default:false;index" json:"is_partial_order"`
	OriginalOrderID       *uint          `gorm:"index" json:"original_order_id,omitempty"`
	UpdatedItems          ReviewItemList `gorm:"type:json" json:"updated_items,omitempty"`
	RemovedItems          ReviewItemList `gorm:"type:json" json:"removed_items,omitempty"` // audit of items confirmed at zero during a split
	InvoiceRejectedReason string         `gorm:"not null;default:''" json:"invoice_rejected_reason"`
	TrackingNumber        string         `gorm:"default:''" json:"tracking_number"`
	Version               uint           `gorm:"not null;default:1" json:"version"` // optimistic concurrency guard
	CreatedAt             time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`

	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	BackOrders []Order     `gorm:"foreignKey:OriginalOrderID" json:"back_orders,omitempty"`
	Invoice    *Invoice    `gorm:"foreignKey:OrderID" json:"invoice,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
