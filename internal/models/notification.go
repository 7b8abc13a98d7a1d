package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is the audit row written by the worker for every status
// transition and back-order creation. Feeds the dashboard activity feed.
type Notification struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Kind       string         `gorm:"index;not null" json:"kind"`
	OrderID    uint           `gorm:"index;not null" json:"order_id"`
	OrderNo    string         `gorm:"index;not null" json:"order_no"`
	FromStatus string         `gorm:"default:''" json:"from_status"`
	ToStatus   string         `gorm:"default:''" json:"to_status"`
	Actor      string         `gorm:"default:''" json:"actor"`
	Message    string         `gorm:"type:text" json:"message"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Notification) TableName() string {
	return "notifications"
}
