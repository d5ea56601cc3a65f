// Package books implements the book queries and mutations.
package books

import (
	"context"

	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/shopspring/decimal"
)

type BookProvider interface {
	GetAllBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id uint) (*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) error
	UpdateBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id uint) error
}

// CreateBookInput holds the fields of a new book. Author falls back to
// models.DefaultAuthor; ISBN and Description default to empty.
type CreateBookInput struct {
	Title       *string  `json:"title" validate:"required,min=1,max=255"`
	Author      *string  `json:"author" validate:"omitempty,max=255"`
	ISBN        *string  `json:"isbn" validate:"omitempty,max=13"`
	Pages       *int     `json:"pages" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
	Quantity    *int     `json:"quantity" validate:"required"`
	Description *string  `json:"description"`
	Status      *bool    `json:"status" validate:"required"`
}

// UpdateBookInput has the same fields as CreateBookInput; nil fields are
// left untouched.
type UpdateBookInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Author      *string  `json:"author" validate:"omitempty,max=255"`
	ISBN        *string  `json:"isbn" validate:"omitempty,max=13"`
	Pages       *int     `json:"pages"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0,lte=99999999.99"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	Status      *bool    `json:"status"`
}

type BookService struct {
	repo     BookProvider
	validate *validation.Validator
}

func NewBookService(r BookProvider, v *validation.Validator) *BookService {
	return &BookService{repo: r, validate: v}
}

// List returns all books ordered by creation date, newest first.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAllBooks(ctx)
}

func (s *BookService) Create(ctx context.Context, input CreateBookInput) (*models.Book, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:    *input.Title,
		Pages:    *input.Pages,
		Price:    toPrice(*input.Price),
		Quantity: *input.Quantity,
		Status:   *input.Status,
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.ISBN != nil {
		book.ISBN = *input.ISBN
	}
	if input.Description != nil {
		book.Description = *input.Description
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update reads the book, applies the supplied fields and writes it back.
// Concurrent updates of the same book are last-writer-wins.
func (s *BookService) Update(ctx context.Context, id uint, input UpdateBookInput) (*models.Book, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
		if book.Author == "" {
			book.Author = models.DefaultAuthor
		}
	}
	if input.ISBN != nil {
		book.ISBN = *input.ISBN
	}
	if input.Pages != nil {
		book.Pages = *input.Pages
	}
	if input.Price != nil {
		book.Price = toPrice(*input.Price)
	}
	if input.Quantity != nil {
		book.Quantity = *input.Quantity
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.Status != nil {
		book.Status = *input.Status
	}

	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

// toPrice stores prices with two decimal places, matching decimal(10,2).
// Validation caps inputs at 99999999.99 so the rounded value always fits.
func toPrice(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
