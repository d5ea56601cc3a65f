package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// bookColumns are the columns an update may write. date_created is absent.
var bookColumns = []string{
	"title",
	"author",
	"isbn",
	"pages",
	"price",
	"quantity",
	"description",
	"status",
}

type BooksRepository struct {
	db *gorm.DB
}

func NewBooksRepository(db *gorm.DB) *BooksRepository {
	return &BooksRepository{
		db: db,
	}
}

// GetAllBooks returns every book, newest first.
func (r *BooksRepository) GetAllBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := r.db.WithContext(ctx).
		Order("date_created DESC").
		Order("id DESC").
		Find(&books).Error; err != nil {
		return nil, storeError(err)
	}
	return books, nil
}

func (r *BooksRepository) GetBook(ctx context.Context, id uint) (*Book, error) {
	var book Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, storeError(err)
	}
	return &book, nil
}

func (r *BooksRepository) CreateBook(ctx context.Context, book *Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return storeError(err)
	}
	return nil
}

func (r *BooksRepository) UpdateBook(ctx context.Context, book *Book) error {
	res := r.db.WithContext(ctx).
		Model(book).
		Select(bookColumns).
		Updates(book)
	if res.Error != nil {
		return storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *BooksRepository) DeleteBook(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Book{}, id)
	if res.Error != nil {
		return storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}
