package repository

import (
	"errors"

	"github.com/saralchem/orderdesk/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the taxonomy data access interface.
type CategoryRepository interface {
	ListTopLevel() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	CountChildren(id uint) (int64, error)
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// ListTopLevel lists top-level categories with their subcategories.
func (r *GormCategoryRepository) ListTopLevel() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Children").
		Where("parent_id IS NULL").
		Order("sort_order DESC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches a category with children; nil when absent.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Children").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountChildren counts subcategories under a category.
func (r *GormCategoryRepository) CountChildren(id uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
