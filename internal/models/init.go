package models

import (
	"strings"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultStaff creates the default superadmin account on first boot.
func InitDefaultStaff(username, password string) error {
	var count int64
	DB.Model(&Staff{}).Count(&count)

	// With existing accounts, make sure the default admin keeps superadmin.
	if count > 0 {
		if err := DB.Model(&Staff{}).Where("username = ?", "admin").Update("is_super", true).Error; err != nil {
			logger.Warnw("ensure_default_staff_super_failed", "error", err)
		}
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := Staff{
		Username:     username,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		IsSuper:      strings.EqualFold(strings.TrimSpace(username), "admin"),
	}

	if err := DB.Create(&staff).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_staff_created_with_default_password", "username", username, "password", password)
		logger.Warnw("default_staff_password_change_required", "username", username)
	} else {
		logger.Warnw("default_staff_created", "username", username, "password_hidden", true)
	}

	return nil
}
