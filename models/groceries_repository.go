package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var groceryColumns = []string{
	"product_tag",
	"name",
	"category_id",
	"price",
	"quantity",
	"imageurl",
	"status",
}

type GroceriesRepository struct {
	db *gorm.DB
}

func NewGroceriesRepository(db *gorm.DB) *GroceriesRepository {
	return &GroceriesRepository{
		db: db,
	}
}

// GetAllGroceries returns every grocery with its category, newest first.
func (r *GroceriesRepository) GetAllGroceries(ctx context.Context) ([]Grocery, error) {
	var groceries []Grocery
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("date_created DESC").
		Order("id DESC").
		Find(&groceries).Error; err != nil {
		return nil, storeError(err)
	}
	return groceries, nil
}

func (r *GroceriesRepository) GetGrocery(ctx context.Context, id uint) (*Grocery, error) {
	var grocery Grocery
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&grocery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroceryNotFound
		}
		return nil, storeError(err)
	}
	return &grocery, nil
}

// CreateGrocery inserts the grocery without touching its category row.
// An unknown CategoryID is reported as a validation error.
func (r *GroceriesRepository) CreateGrocery(ctx context.Context, grocery *Grocery) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(grocery).Error; err != nil {
		return groceryWriteError(err)
	}
	return nil
}

func (r *GroceriesRepository) UpdateGrocery(ctx context.Context, grocery *Grocery) error {
	res := r.db.WithContext(ctx).
		Model(grocery).
		Select(groceryColumns).
		Updates(grocery)
	if res.Error != nil {
		return groceryWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGroceryNotFound
	}
	return nil
}

func (r *GroceriesRepository) DeleteGrocery(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Grocery{}, id)
	if res.Error != nil {
		return storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGroceryNotFound
	}
	return nil
}

func groceryWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NewValidationError("category", "does not exist")
	}
	return storeError(err)
}
