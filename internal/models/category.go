package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a catalog taxonomy node. A nil ParentID marks a top-level
// category; children are its subcategories.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	ParentID  *uint          `gorm:"index" json:"parent_id,omitempty"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
