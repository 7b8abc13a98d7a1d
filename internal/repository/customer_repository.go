package repository

import (
	"errors"
	"fmt"

	"github.com/saralchem/orderdesk/internal/models"

	"gorm.io/gorm"
)

// CustomerRepository is the customer data access interface.
type CustomerRepository interface {
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id uint) error
}

// GormCustomerRepository is the GORM implementation.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository.
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// List lists customers with filtering and pagination.
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	var customers []models.Customer
	query := r.db.Model(&models.Customer{})

	if filter.Keyword != "" {
		like := fmt.Sprintf("%%%s%%", filter.Keyword)
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ? OR gstin LIKE ?", like, like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// GetByID fetches a customer; nil when absent.
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByEmail fetches a customer by email; nil when absent.
func (r *GormCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create inserts a customer.
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update saves a customer.
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete removes a customer.
func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}
