package main

import (
	"context"
	"fmt"

	"github.com/mytheresa/ecommerce-catalog/app/books"
	"github.com/mytheresa/ecommerce-catalog/app/categories"
	"github.com/mytheresa/ecommerce-catalog/app/database"
	"github.com/mytheresa/ecommerce-catalog/app/groceries"
	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedGrocery struct {
	tag, name string
	price     float64
	quantity  int
}

var seedCatalog = []struct {
	category  string
	groceries []seedGrocery
}{
	{"Fruit", []seedGrocery{{"FRT-APL", "Apple", 0.45, 120}, {"FRT-BAN", "Banana", 0.25, 80}}},
	{"Dairy", []seedGrocery{{"DRY-MLK", "Whole milk 1L", 1.15, 40}}},
	{"Bakery", []seedGrocery{{"BKR-SRD", "Sourdough loaf", 3.80, 15}}},
}

var seedBooks = []books.CreateBookInput{
	newSeedBook("The Go Programming Language", "Alan Donovan", "9780134190440", 380, 34.99, 7),
	newSeedBook("Designing Data-Intensive Applications", "Martin Kleppmann", "9781449373320", 616, 45.50, 3),
	newSeedBook("Untitled Manuscript", "", "", 120, 9.00, 1),
}

func newSeedBook(title, author, isbn string, pages int, price float64, quantity int) books.CreateBookInput {
	status := true
	in := books.CreateBookInput{
		Title:    &title,
		ISBN:     &isbn,
		Pages:    &pages,
		Price:    &price,
		Quantity: &quantity,
		Status:   &status,
	}
	if author != "" {
		in.Author = &author
	}
	return in
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample categories, books and groceries",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Migrate(a.db); err != nil {
				return err
			}
			return seed(cmd.Context(), a.db, a.log)
		},
	}
}

func seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	v := validation.New()
	categorySvc := categories.NewCategoryService(models.NewCategoriesRepository(db), v)
	bookSvc := books.NewBookService(models.NewBooksRepository(db), v)
	grocerySvc := groceries.NewGroceryService(models.NewGroceriesRepository(db), v)

	for _, entry := range seedCatalog {
		category, err := categorySvc.Create(ctx, categories.CategoryInput{Title: entry.category})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", entry.category, err)
		}
		for _, g := range entry.groceries {
			_, err := grocerySvc.Create(ctx, groceries.CreateGroceryInput{
				ProductTag: g.tag,
				Name:       g.name,
				CategoryID: category.ID,
				Price:      g.price,
				Quantity:   g.quantity,
				ImageURL:   "https://images.example.com/groceries/" + g.tag + ".jpg",
				Status:     g.quantity > 0,
			})
			if err != nil {
				return fmt.Errorf("seed grocery %q: %w", g.tag, err)
			}
		}
	}

	for _, in := range seedBooks {
		if _, err := bookSvc.Create(ctx, in); err != nil {
			return fmt.Errorf("seed book %q: %w", *in.Title, err)
		}
	}

	log.Info("seed complete",
		zap.Int("categories", len(seedCatalog)),
		zap.Int("books", len(seedBooks)),
	)
	return nil
}
