// Package groceries lists groceries. Groceries are query-only through the
// API; Create exists for seeding the catalog.
package groceries

import (
	"context"

	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/shopspring/decimal"
)

type GroceryProvider interface {
	GetAllGroceries(ctx context.Context) ([]models.Grocery, error)
	GetGrocery(ctx context.Context, id uint) (*models.Grocery, error)
	CreateGrocery(ctx context.Context, grocery *models.Grocery) error
}

type CreateGroceryInput struct {
	ProductTag string  `json:"product_tag" validate:"required,max=10"`
	Name       string  `json:"name" validate:"required,max=255"`
	CategoryID uint    `json:"category" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0,lte=99999999.99"`
	Quantity   int     `json:"quantity"`
	ImageURL   string  `json:"imageurl" validate:"required,url,max=200"`
	Status     bool    `json:"status"`
}

type GroceryService struct {
	repo     GroceryProvider
	validate *validation.Validator
}

func NewGroceryService(r GroceryProvider, v *validation.Validator) *GroceryService {
	return &GroceryService{repo: r, validate: v}
}

// List returns all groceries with their category, newest first.
func (s *GroceryService) List(ctx context.Context) ([]models.Grocery, error) {
	return s.repo.GetAllGroceries(ctx)
}

// Create inserts a grocery and returns it with its category loaded.
func (s *GroceryService) Create(ctx context.Context, input CreateGroceryInput) (*models.Grocery, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	grocery := &models.Grocery{
		ProductTag: input.ProductTag,
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      decimal.NewFromFloat(input.Price).Round(2),
		Quantity:   input.Quantity,
		ImageURL:   input.ImageURL,
		Status:     input.Status,
	}
	if err := s.repo.CreateGrocery(ctx, grocery); err != nil {
		return nil, err
	}
	return s.repo.GetGrocery(ctx, grocery.ID)
}
