package categories

import (
	"context"

	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
)

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

type CategoryService struct {
	repo     CategoryProvider
	validate *validation.Validator
}

func NewCategoryService(r CategoryProvider, v *validation.Validator) *CategoryService {
	return &CategoryService{repo: r, validate: v}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAllCategories(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	category := &models.Category{Title: input.Title}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update overwrites the title of an existing category.
func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*models.Category, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Title = input.Title
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category together with its groceries.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, id)
}
