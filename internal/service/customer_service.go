package service

import (
	"fmt"
	"strings"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"
)

// CustomerService is the customer directory business service.
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a customer service.
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CustomerInput is the create/update payload for a customer.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	GSTIN   string
	Address string
	Status  string
}

// List lists customers.
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one customer.
func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, id)
	}
	return customer, nil
}

// Create registers a customer. Email is the unique handle.
func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	if err := validateCustomer(&input); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email=%s", ErrCustomerExists, input.Email)
	}

	customer := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		GSTIN:   input.GSTIN,
		Address: input.Address,
		Status:  input.Status,
	}
	if err := s.repo.Create(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update replaces a customer's profile fields.
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validateCustomer(&input); err != nil {
		return nil, err
	}
	if input.Email != customer.Email {
		existing, err := s.repo.GetByEmail(input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: email=%s", ErrCustomerExists, input.Email)
		}
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Company = input.Company
	customer.GSTIN = input.GSTIN
	customer.Address = input.Address
	customer.Status = input.Status

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer from the directory.
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func validateCustomer(input *CustomerInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.GSTIN = strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if input.Name == "" {
		return newValidationError("name", "is required")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return newValidationError("email", "must be a valid email address")
	}
	if input.GSTIN != "" && len(input.GSTIN) != 15 {
		return newValidationError("gstin", "must be 15 characters")
	}
	switch input.Status {
	case "":
		input.Status = constants.CustomerStatusActive
	case constants.CustomerStatusActive, constants.CustomerStatusDisabled:
	default:
		return newValidationError("status", "must be 'active' or 'disabled'")
	}
	return nil
}
