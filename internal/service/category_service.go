package service

import (
	"fmt"
	"strings"

	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"
)

// CategoryService is the category business service.
type CategoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{repo: repo, productRepo: productRepo}
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name      string
	ParentID  *uint
	SortOrder int
}

// List returns the top level categories with their children.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.ListTopLevel()
}

// Get fetches one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrCategoryNotFound, id)
	}
	return category, nil
}

// Create adds a category.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := s.validate(&input, 0); err != nil {
		return nil, err
	}
	category := models.Category{
		Name:      input.Name,
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update replaces a category's fields.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&input, id); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.ParentID = input.ParentID
	category.SortOrder = input.SortOrder

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Categories that still hold children or
// products are refused.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	children, err := s.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return fmt.Errorf("%w: has child categories", ErrCategoryNotEmpty)
	}
	products, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return fmt.Errorf("%w: has products", ErrCategoryNotEmpty)
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) validate(input *CategoryInput, selfID uint) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return newValidationError("name", "is required")
	}
	if input.ParentID != nil {
		if selfID != 0 && *input.ParentID == selfID {
			return newValidationError("parent_id", "a category cannot be its own parent")
		}
		parent, err := s.repo.GetByID(*input.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: id=%d", ErrCategoryNotFound, *input.ParentID)
		}
	}
	return nil
}
