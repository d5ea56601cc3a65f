package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/mytheresa/ecommerce-catalog/app/database/databasetest"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dateLayout = "2006-01-02"

// --- Helpers ---

func newTestBook(title string) *models.Book {
	return &models.Book{
		Title:    title,
		ISBN:     "9780000000000",
		Pages:    100,
		Price:    decimal.RequireFromString("12.50"),
		Quantity: 3,
		Status:   true,
	}
}

func newTestGrocery(tag string, categoryID uint) *models.Grocery {
	return &models.Grocery{
		ProductTag: tag,
		Name:       "Item " + tag,
		CategoryID: categoryID,
		Price:      decimal.NewFromInt(2),
		Quantity:   10,
		ImageURL:   "https://example.com/" + tag + ".png",
		Status:     true,
	}
}

// --- Categories ---

func TestCategoriesRepository(t *testing.T) {
	ctx := context.Background()
	repo := models.NewCategoriesRepository(databasetest.New(t))

	fiction := &models.Category{Title: "Fiction"}
	require.NoError(t, repo.CreateCategory(ctx, fiction))
	assert.NotZero(t, fiction.ID)

	all, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *fiction, all[0])

	fiction.Title = "Sci-Fi"
	require.NoError(t, repo.UpdateCategory(ctx, fiction))
	got, err := repo.GetCategory(ctx, fiction.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", got.Title)

	require.NoError(t, repo.DeleteCategory(ctx, fiction.ID))
	all, err = repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, repo.DeleteCategory(ctx, fiction.ID), models.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.UpdateCategory(ctx, &models.Category{ID: fiction.ID, Title: "x"}), models.ErrNotFound)
	_, err = repo.GetCategory(ctx, fiction.ID)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestDeleteCategoryCascadesToGroceries(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	categories := models.NewCategoriesRepository(db)
	groceries := models.NewGroceriesRepository(db)

	fruit := &models.Category{Title: "Fruit"}
	dairy := &models.Category{Title: "Dairy"}
	require.NoError(t, categories.CreateCategory(ctx, fruit))
	require.NoError(t, categories.CreateCategory(ctx, dairy))

	require.NoError(t, groceries.CreateGrocery(ctx, newTestGrocery("APL", fruit.ID)))
	require.NoError(t, groceries.CreateGrocery(ctx, newTestGrocery("BAN", fruit.ID)))
	require.NoError(t, groceries.CreateGrocery(ctx, newTestGrocery("MLK", dairy.ID)))

	require.NoError(t, categories.DeleteCategory(ctx, fruit.ID))

	left, err := groceries.GetAllGroceries(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "MLK", left[0].ProductTag)
	assert.Equal(t, "Dairy", left[0].Category.Title)
}

// --- Books ---

func TestBooksRepositoryCreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := models.NewBooksRepository(databasetest.New(t))

	book := newTestBook("Dune")
	require.NoError(t, repo.CreateBook(ctx, book))

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAuthor, got.Author)
	assert.Equal(t, time.Now().UTC().Format(dateLayout), got.DateCreated.UTC().Format(dateLayout))
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Price))
}

func TestBooksRepositoryUpdateKeepsDateCreated(t *testing.T) {
	ctx := context.Background()
	repo := models.NewBooksRepository(databasetest.New(t))

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	book := newTestBook("Emma")
	book.DateCreated = created
	require.NoError(t, repo.CreateBook(ctx, book))

	book.Title = "Emma (2nd ed.)"
	book.Pages = 420
	book.DateCreated = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateBook(ctx, book))

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma (2nd ed.)", got.Title)
	assert.Equal(t, 420, got.Pages)
	assert.Equal(t, "2024-03-01", got.DateCreated.UTC().Format(dateLayout))
}

func TestBooksRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := models.NewBooksRepository(databasetest.New(t))

	days := []struct {
		title string
		date  time.Time
	}{
		{"Old", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"New", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"Middle", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"New too", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, d := range days {
		b := newTestBook(d.title)
		b.DateCreated = d.date
		require.NoError(t, repo.CreateBook(ctx, b))
	}

	books, err := repo.GetAllBooks(ctx)
	require.NoError(t, err)

	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	assert.Equal(t, []string{"New too", "New", "Middle", "Old"}, titles)
}

func TestBooksRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := models.NewBooksRepository(databasetest.New(t))

	_, err := repo.GetBook(ctx, 42)
	assert.ErrorIs(t, err, models.ErrBookNotFound)
	assert.ErrorIs(t, repo.UpdateBook(ctx, &models.Book{ID: 42, Title: "x"}), models.ErrBookNotFound)
	assert.ErrorIs(t, repo.DeleteBook(ctx, 42), models.ErrBookNotFound)

	book := newTestBook("Gone")
	require.NoError(t, repo.CreateBook(ctx, book))
	require.NoError(t, repo.DeleteBook(ctx, book.ID))
	assert.ErrorIs(t, repo.DeleteBook(ctx, book.ID), models.ErrNotFound)
}

// --- Groceries ---

func TestGroceriesRepository(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	categories := models.NewCategoriesRepository(db)
	repo := models.NewGroceriesRepository(db)

	veg := &models.Category{Title: "Vegetables"}
	require.NoError(t, categories.CreateCategory(ctx, veg))

	older := newTestGrocery("CAR", veg.ID)
	older.DateCreated = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateGrocery(ctx, older))
	newer := newTestGrocery("POT", veg.ID)
	require.NoError(t, repo.CreateGrocery(ctx, newer))

	all, err := repo.GetAllGroceries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "POT", all[0].ProductTag)
	assert.Equal(t, "CAR", all[1].ProductTag)
	assert.Equal(t, "Vegetables", all[0].Category.Title)

	newer.Quantity = 0
	newer.Status = false
	require.NoError(t, repo.UpdateGrocery(ctx, newer))
	got, err := repo.GetGrocery(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
	assert.False(t, got.Status)

	require.NoError(t, repo.DeleteGrocery(ctx, newer.ID))
	assert.ErrorIs(t, repo.DeleteGrocery(ctx, newer.ID), models.ErrGroceryNotFound)
}

func TestCreateGroceryUnknownCategory(t *testing.T) {
	repo := models.NewGroceriesRepository(databasetest.New(t))

	err := repo.CreateGrocery(context.Background(), newTestGrocery("NOPE", 404))

	assert.ErrorIs(t, err, models.ErrValidation)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "does not exist", vErr.Fields["category"])
}

// --- Identifiers ---

func TestDeletedIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	categories := models.NewCategoriesRepository(db)
	books := models.NewBooksRepository(db)
	groceries := models.NewGroceriesRepository(db)

	first := &models.Category{Title: "Fruit"}
	last := &models.Category{Title: "Dairy"}
	require.NoError(t, categories.CreateCategory(ctx, first))
	require.NoError(t, categories.CreateCategory(ctx, last))
	require.NoError(t, categories.DeleteCategory(ctx, last.ID))

	next := &models.Category{Title: "Bakery"}
	require.NoError(t, categories.CreateCategory(ctx, next))
	assert.Greater(t, next.ID, last.ID)

	book := newTestBook("Dune")
	require.NoError(t, books.CreateBook(ctx, book))
	require.NoError(t, books.DeleteBook(ctx, book.ID))
	nextBook := newTestBook("Emma")
	require.NoError(t, books.CreateBook(ctx, nextBook))
	assert.Greater(t, nextBook.ID, book.ID)

	grocery := newTestGrocery("APL", first.ID)
	require.NoError(t, groceries.CreateGrocery(ctx, grocery))
	require.NoError(t, groceries.DeleteGrocery(ctx, grocery.ID))
	nextGrocery := newTestGrocery("BAN", first.ID)
	require.NoError(t, groceries.CreateGrocery(ctx, nextGrocery))
	assert.Greater(t, nextGrocery.ID, grocery.ID)
}
