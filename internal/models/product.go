package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. Variants are free-text labels (pack sizes,
// grades); order items reference one of them by string match.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	HSNCode     string         `gorm:"index;default:''" json:"hsn_code"`
	Unit        string         `gorm:"default:''" json:"unit"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Variants    StringArray    `gorm:"type:json" json:"variants"`
	Images      StringArray    `gorm:"type:json" json:"images"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// HasVariant reports whether label is one of the product's variants.
func (p *Product) HasVariant(label string) bool {
	for _, v := range p.Variants {
		if v == label {
			return true
		}
	}
	return false
}
