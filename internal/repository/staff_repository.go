package repository

import (
	"errors"
	"time"

	"github.com/saralchem/orderdesk/internal/models"

	"gorm.io/gorm"
)

// StaffRepository is the operator account data access interface.
type StaffRepository interface {
	List() ([]models.Staff, error)
	GetByID(id uint) (*models.Staff, error)
	GetByUsername(username string) (*models.Staff, error)
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	Delete(id uint) error
	UpdateLastLogin(id uint, at time.Time) error
}

// GormStaffRepository is the GORM implementation.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a staff repository.
func NewStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// List lists all operator accounts.
func (r *GormStaffRepository) List() ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// GetByID fetches a staff account; nil when absent.
func (r *GormStaffRepository) GetByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByUsername fetches a staff account by username; nil when absent.
func (r *GormStaffRepository) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.Where("username = ?", username).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// Create inserts a staff account.
func (r *GormStaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// Update saves a staff account.
func (r *GormStaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

// Delete removes a staff account.
func (r *GormStaffRepository) Delete(id uint) error {
	return r.db.Delete(&models.Staff{}, id).Error
}

// UpdateLastLogin stamps the last login time.
func (r *GormStaffRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Staff{}).Where("id = ?", id).Update("last_login_at", at).Error
}
