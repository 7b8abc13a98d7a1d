package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a business buyer account (orders belong to a customer).
type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string         `gorm:"index;default:''" json:"phone"`
	Company   string         `gorm:"default:''" json:"company"`
	GSTIN     string         `gorm:"index;default:''" json:"gstin"`
	Address   string         `gorm:"type:text" json:"address"`
	Status    string         `gorm:"default:'active';index" json:"status"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}
