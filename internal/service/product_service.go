package service

import (
	"fmt"
	"strings"

	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService is the catalog business service.
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	HSNCode     string
	Unit        string
	Price       decimal.Decimal
	Variants    []string
	Images      []string
	IsActive    *bool
	SortOrder   int
}

// List lists products for the admin catalog view.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return product, nil
}

// Create adds a product to the catalog.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	product := models.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		HSNCode:     input.HSNCode,
		Unit:        input.Unit,
		Price:       models.Money{Decimal: input.Price.Round(2)},
		Variants:    models.StringArray(input.Variants),
		Images:      models.StringArray(input.Images),
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces a product's catalog fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Description = input.Description
	product.HSNCode = input.HSNCode
	product.Unit = input.Unit
	product.Price = models.Money{Decimal: input.Price.Round(2)}
	product.Variants = models.StringArray(input.Variants)
	product.Images = models.StringArray(input.Images)
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.SortOrder = input.SortOrder

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ProductService) validate(input *ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return newValidationError("name", "is required")
	}
	if input.Unit = strings.TrimSpace(input.Unit); input.Unit == "" {
		return newValidationError("unit", "is required")
	}
	if input.Price.IsNegative() {
		return newValidationError("price", "cannot be negative")
	}
	seen := make(map[string]struct{}, len(input.Variants))
	for i, variant := range input.Variants {
		variant = strings.TrimSpace(variant)
		if variant == "" {
			return newValidationError("variants", "variant labels cannot be blank")
		}
		if _, dup := seen[variant]; dup {
			return newValidationError("variants", fmt.Sprintf("duplicate variant '%s'", variant))
		}
		seen[variant] = struct{}{}
		input.Variants[i] = variant
	}
	if input.CategoryID != 0 {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: id=%d", ErrCategoryNotFound, input.CategoryID)
		}
	}
	return nil
}
