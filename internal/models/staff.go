package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff is a dashboard operator account. Role gates which workflow
// transitions the account may trigger; IsSuper bypasses role checks.
type Staff struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"not null;index" json:"role"`
	IsSuper            bool           `gorm:"not null;default:false;index" json:"is_super"`
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`
	LastLoginAt        *time.Time     `json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Staff) TableName() string {
	return "staff"
}
